// Package connector decides how the player gets from one platform to another
// and synthesizes the geometry that supports it: a path of mantle waypoints
// or a wall-run slab.
package connector

import (
	"fmt"

	"github.com/automoto/parkour-gen/config"
)

// Type is the traversal mechanic between two platforms.
type Type int

const (
	None Type = iota
	Mantle
	WallRun
	LedgeGrab
)

var typeNames = [...]string{
	None:      "None",
	Mantle:    "Mantle",
	WallRun:   "WallRun",
	LedgeGrab: "LedgeGrab",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	for i, n := range typeNames {
		if n == string(b) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown connector type %q", string(b))
}

// Classify picks the mechanic for a horizontal centre distance and an
// absolute height difference. Every bound is exclusive and the checks run in
// priority order: mantle, wall-run, ledge grab.
func Classify(distance, heightDiff float64, cfg config.ConnectorConfig) Type {
	switch {
	case heightDiff > cfg.MantleMinHeight && heightDiff < cfg.MantleMaxHeight &&
		distance > cfg.MantleMinHorizontalDistance && distance < cfg.MantleMaxDistance:
		return Mantle
	case distance > cfg.WallRunMinDistance && distance < cfg.WallRunMaxDistance &&
		heightDiff < cfg.WallRunMaxHeight:
		return WallRun
	case distance < cfg.LedgeGrabMaxDistance && heightDiff > cfg.LedgeGrabMinHeight:
		return LedgeGrab
	}
	return None
}
