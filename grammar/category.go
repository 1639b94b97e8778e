package grammar

import (
	"fmt"
	"strings"
)

// Kind is the mechanic part of a placement category.
type Kind int

const (
	Beside Kind = iota
	SmallJump
	LongJump
	Above
	Below
	VeryHigh
	VeryLow
)

var kindNames = [...]string{
	Beside:    "Beside",
	SmallJump: "SmallJump",
	LongJump:  "LongJump",
	Above:     "Above",
	Below:     "Below",
	VeryHigh:  "VeryHigh",
	VeryLow:   "VeryLow",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", string(b))
}

// Direction is the cardinal part of a placement category, relative to the
// previous platform's heading.
type Direction int

const (
	Forward Direction = iota
	Left
	Right
	Back
)

var directionNames = [...]string{
	Forward: "Forward",
	Left:    "Left",
	Right:   "Right",
	Back:    "Back",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case Forward:
		return Back
	case Back:
		return Forward
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Axis is the unit vector of d in the local frame: forward is +X, left is +Y.
func (d Direction) Axis() (float64, float64) {
	switch d {
	case Back:
		return -1, 0
	case Left:
		return 0, 1
	case Right:
		return 0, -1
	}
	return 1, 0
}

// Category pairs a mechanic with a direction, e.g. LongJumpLeft.
type Category struct {
	Kind Kind
	Dir  Direction
}

func (c Category) String() string {
	return c.Kind.String() + c.Dir.String()
}

func (c Category) MarshalText() ([]byte, error) {
	if _, err := c.Kind.MarshalText(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory parses names such as "AboveLeft". A bare kind means Forward.
func ParseCategory(s string) (Category, error) {
	for k, kn := range kindNames {
		rest, ok := strings.CutPrefix(s, kn)
		if !ok {
			continue
		}
		if rest == "" {
			return Category{Kind: Kind(k), Dir: Forward}, nil
		}
		for d, dn := range directionNames {
			if rest == dn {
				return Category{Kind: Kind(k), Dir: Direction(d)}, nil
			}
		}
	}
	return Category{}, fmt.Errorf("unknown placement category %q", s)
}
