// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Flyweight interns strings into dense integer ids in order of first use.
// The zero value is ready to use.
type Flyweight struct {
	ids   map[string]int
	items []string
}

// Add returns the id of item, interning it if it is new.
func (f *Flyweight) Add(item string) int {
	if id, ok := f.ids[item]; ok {
		return id
	}
	if f.ids == nil {
		f.ids = make(map[string]int)
	}
	id := len(f.items)
	f.ids[item] = id
	f.items = append(f.items, item)
	return id
}

// ID returns the id of an interned item.
func (f *Flyweight) ID(item string) (int, bool) {
	id, ok := f.ids[item]
	return id, ok
}

// Item returns the string interned under id.
func (f *Flyweight) Item(id int) (string, error) {
	if id < 0 || id >= len(f.items) {
		return "", fmt.Errorf("Flyweight.Item(%d): %w", id, ErrUnknownID)
	}
	return f.items[id], nil
}

// Len returns the number of interned items.
func (f *Flyweight) Len() int { return len(f.items) }

// Reset forgets every interned item.
func (f *Flyweight) Reset() {
	f.ids = nil
	f.items = nil
}
