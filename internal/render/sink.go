// Package render turns transitions into sequences of frames, either by
// sampling them offline or by playing them against the clock.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sink receives rendered frames in order.
type Sink interface {
	WriteFrame(index int, img image.Image) error
}

// DirSink writes every frame as <Prefix>-NNNN.png inside Dir.
type DirSink struct {
	Dir    string
	Prefix string
}

func NewDirSink(dir, prefix string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if prefix == "" {
		prefix = "frame"
	}
	return &DirSink{Dir: dir, Prefix: prefix}, nil
}

// Path returns the file a frame index is written to.
func (s *DirSink) Path(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s-%04d.png", s.Prefix, index))
}

func (s *DirSink) WriteFrame(index int, img image.Image) error {
	f, err := os.Create(s.Path(index))
	if err != nil {
		return fmt.Errorf("creating frame %d: %w", index, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding frame %d: %w", index, err)
	}
	return f.Close()
}

// MemorySink keeps frames in memory.
type MemorySink struct {
	Frames []image.Image
}

func (s *MemorySink) WriteFrame(_ int, img image.Image) error {
	s.Frames = append(s.Frames, img)
	return nil
}
