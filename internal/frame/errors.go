package frame

import "fmt"

// PageError is returned when a page index was never registered.
type PageError struct {
	Page  int
	Count int
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d out of range (have %d)", e.Page, e.Count)
}

// EmptyFrameError is returned when a decoded image has no pixels.
type EmptyFrameError struct {
	Path string
}

func (e *EmptyFrameError) Error() string {
	return fmt.Sprintf("%s has no pixels", e.Path)
}
