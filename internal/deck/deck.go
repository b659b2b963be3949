// Package deck keeps the ordered list of pages a presentation steps
// through.
package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var ErrEmpty = errors.New("deck has no pages")

// Deck is a list of page image paths with a cursor. It is safe for
// concurrent use.
type Deck struct {
	sync.Mutex
	pages   []string
	current int
	loop    bool
}

// New returns a deck positioned on the first page. With loop set, Next on
// the last page wraps to the first.
func New(pages []string, loop bool) *Deck {
	return &Deck{
		pages: append([]string(nil), pages...),
		loop:  loop,
	}
}

// FromDir builds a deck from the images in dir, sorted by name.
func FromDir(dir string, loop bool) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !IsImage(entry.Name()) {
			continue
		}
		pages = append(pages, filepath.Join(dir, entry.Name()))
	}
	if len(pages) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(pages)
	return New(pages, loop), nil
}

// IsImage reports whether name has an extension LoadFrame can decode.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func (d *Deck) Pages() []string {
	d.Lock()
	defer d.Unlock()
	return append([]string(nil), d.pages...)
}

func (d *Deck) Len() int {
	d.Lock()
	defer d.Unlock()
	return len(d.pages)
}

// Current returns the page under the cursor and its index.
func (d *Deck) Current() (string, int, error) {
	d.Lock()
	defer d.Unlock()
	if len(d.pages) == 0 {
		return "", 0, ErrEmpty
	}
	return d.pages[d.current], d.current, nil
}

// Next moves the cursor forward and returns the new page. ok is false on
// the last page of a deck that does not loop; the cursor stays put.
func (d *Deck) Next() (page string, index int, ok bool) {
	d.Lock()
	defer d.Unlock()
	return d.step(1)
}

// Prev moves the cursor back. It wraps like Next.
func (d *Deck) Prev() (page string, index int, ok bool) {
	d.Lock()
	defer d.Unlock()
	return d.step(-1)
}

// Peek returns the page Next (delta 1) or Prev (delta -1) would move to,
// without moving the cursor.
func (d *Deck) Peek(delta int) (page string, index int, ok bool) {
	d.Lock()
	defer d.Unlock()
	return d.neighbor(delta)
}

func (d *Deck) step(delta int) (string, int, bool) {
	page, i, ok := d.neighbor(delta)
	if ok {
		d.current = i
	}
	return page, i, ok
}

func (d *Deck) neighbor(delta int) (string, int, bool) {
	n := len(d.pages)
	if n == 0 {
		return "", 0, false
	}
	i := d.current + delta
	if i < 0 || i >= n {
		if !d.loop || n == 1 {
			return d.pages[d.current], d.current, false
		}
		i = (i + n) % n
	}
	return d.pages[i], i, true
}

// Goto moves the cursor to index.
func (d *Deck) Goto(index int) (string, error) {
	d.Lock()
	defer d.Unlock()
	if index < 0 || index >= len(d.pages) {
		return "", &IndexError{Index: index, Count: len(d.pages)}
	}
	d.current = index
	return d.pages[index], nil
}

// Shuffle reorders the pages and moves the cursor to the first one.
func (d *Deck) Shuffle(r *rand.Rand) {
	d.Lock()
	defer d.Unlock()

	shuffle := rand.Shuffle
	if r != nil {
		shuffle = r.Shuffle
	}
	shuffle(len(d.pages), func(i, j int) {
		d.pages[i], d.pages[j] = d.pages[j], d.pages[i]
	})
	d.current = 0
}

type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("page index %d out of range, deck has %d pages", e.Index, e.Count)
}
