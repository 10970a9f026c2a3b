package genling

import (
	"fmt"
	"strconv"
)

// Position restricts the word slots a syllable may occupy.
//
// Slots are 1-based. Positive bounds count from the start of the word, negative
// bounds from the end, so -1 is the last slot and -2 the one before it.
// The zero value places no restriction.
type Position struct {
	min int
	max int
}

// Anywhere returns a position that permits every slot.
func Anywhere() Position {
	return Position{}
}

// At returns a position matching exactly one slot. At(0) is the same as Anywhere.
func At(slot int) Position {
	return Position{min: slot, max: slot}
}

// Between returns a position matching the inclusive slot range [min, max].
// Neither bound may be zero.
func Between(min, max int) Position {
	return Position{min: min, max: max}
}

// IsAnywhere reports whether p places no restriction.
func (p Position) IsAnywhere() bool {
	return p.min == 0 && p.max == 0
}

// Bounds returns the raw, unresolved slot bounds.
func (p Position) Bounds() (min, max int) {
	return p.min, p.max
}

// Permits reports whether the 0-based slot i of a word with total slots is allowed.
func (p Position) Permits(i, total int) bool {
	if p.IsAnywhere() {
		return true
	}
	slot := i + 1
	return resolveSlot(p.min, total) <= slot && slot <= resolveSlot(p.max, total)
}

func (p Position) validate() error {
	if p.IsAnywhere() {
		return nil
	}
	if p.min == 0 || p.max == 0 {
		return fmt.Errorf("%w: %s has a zero bound", ErrInvalidPosition, p)
	}
	return nil
}

// String renders p as "any", a single slot, or "min..max".
func (p Position) String() string {
	switch {
	case p.IsAnywhere():
		return "any"
	case p.min == p.max:
		return strconv.Itoa(p.min)
	default:
		return strconv.Itoa(p.min) + ".." + strconv.Itoa(p.max)
	}
}

func resolveSlot(bound, total int) int {
	if bound > 0 {
		return bound
	}
	return total + bound + 1
}
