package primitives

import "fmt"

// CharSet efficiently represents a set of letters.
type CharSet struct {
	available []bool
	min       rune
	count     int
}

func NewCharSet(min, max rune) *CharSet {
	return &CharSet{
		available: make([]bool, max-min+1),
		min:       min,
		count:     0,
	}
}

// DefaultCharSet returns an empty set that can hold the uppercase letters A to Z.
func DefaultCharSet() *CharSet {
	return NewCharSet('A', 'Z')
}

// Alphabet returns the full A to Z set used for word validation and decorative fill.
func Alphabet() *CharSet {
	cs := DefaultCharSet()
	for r := 'A'; r <= 'Z'; r++ {
		_ = cs.Add(r)
	}
	return cs
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !c.inRange(r) {
		return fmt.Errorf("character %c is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// Contains checks if a character is in the set. Characters outside the
// set's range are never contained.
func (c *CharSet) Contains(r rune) bool {
	return c.inRange(r) && c.available[r-c.min]
}

// ContainsAll reports whether every rune of s is in the set.
func (c *CharSet) ContainsAll(s string) bool {
	for _, r := range s {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// Letters returns the members of the set in ascending order.
func (c *CharSet) Letters() []rune {
	out := make([]rune, 0, c.count)
	for i, ok := range c.available {
		if ok {
			out = append(out, c.min+rune(i))
		}
	}
	return out
}

func (c *CharSet) inRange(r rune) bool {
	return r >= c.min && r <= c.min+rune(len(c.available)-1)
}
