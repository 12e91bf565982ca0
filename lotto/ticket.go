package lotto

import (
	"strconv"
	"strings"
)

// Ticket is one candidate selection for a game: MainPickCount unique main
// numbers sorted ascending, plus a special number when the game has a
// special pool (0 otherwise).
type Ticket struct {
	MainNumbers   []int
	SpecialNumber int
}

// Key returns the normalized dedupe identity: two tickets are equal iff
// their (sorted mains, special) tuples match.
func (t Ticket) Key() string {
	var b strings.Builder
	for i, n := range t.MainNumbers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	if t.SpecialNumber != 0 {
		b.WriteString("|s:")
		b.WriteString(strconv.Itoa(t.SpecialNumber))
	}
	return b.String()
}

// String renders the ticket for terminal display.
func (t Ticket) String() string {
	parts := make([]string, len(t.MainNumbers))
	for i, n := range t.MainNumbers {
		parts[i] = strconv.Itoa(n)
	}
	s := strings.Join(parts, " ")
	if t.SpecialNumber != 0 {
		s += " + " + strconv.Itoa(t.SpecialNumber)
	}
	return s
}
