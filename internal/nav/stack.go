// Package nav implements the navigation history stack at the heart of
// navdeck: back/current/next key stacks plus an append-only log of every
// route ever visited. Stack values are immutable; Push and Pop return a
// new Stack along with the integer key that tags the matching storage
// operation.
package nav

// Stack records visited route keys and the position within them.
//
// Keys are minted in insertion order (0, 1, 2, ...) and never reused.
// Back holds keys reachable by going backward, newest first. Next holds
// keys reachable by going forward and is only populated after a Pop.
// History is the append-only log of every key ever pushed, newest first.
type Stack struct {
	Back    []int `json:"back"`
	Current int   `json:"current"`
	History []int `json:"history"`
	Next    []int `json:"next"`
}

// New returns an empty stack: no entries, current key 0.
func New() Stack {
	return Stack{}
}

// Push mints the next key and makes it current. Any forward history is
// invalidated. The returned key tags the persistence write for this entry.
func (s Stack) Push() (Stack, int) {
	key := len(s.History)
	return Stack{
		Back:    prepend(key, s.Back),
		Current: key,
		History: prepend(key, s.History),
		Next:    nil,
	}, key
}

// Pop steps one entry backward. The popped key moves from the front of
// Back to the front of Next, and the new front of Back becomes current.
// Popping an empty stack clamps to key 0 rather than failing, so "go
// back" at the origin is a harmless no-op. The returned key tags the
// persistence read for the entry being left.
func (s Stack) Pop() (Stack, int) {
	popped := 0
	var rest []int
	if len(s.Back) > 0 {
		popped = s.Back[0]
		rest = s.Back[1:]
	}

	current := 0
	if len(rest) > 0 {
		current = rest[0]
	}

	return Stack{
		Back:    rest,
		Current: current,
		History: s.History,
		Next:    prepend(popped, s.Next),
	}, popped
}

// Revise returns the stack unchanged. Callers use it when the displayed
// route mutates without recording a navigable entry, so the intent shows
// up at the call site.
func (s Stack) Revise() Stack {
	return s
}

// Depth returns the number of entries reachable by going backward.
func (s Stack) Depth() int {
	return len(s.Back)
}

func prepend(key int, keys []int) []int {
	out := make([]int, 0, len(keys)+1)
	out = append(out, key)
	return append(out, keys...)
}
