// Package level runs the whole generation pipeline. Generate decides a Plan
// without touching the host; Apply materializes it through a Spawner.
package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/parkour-gen/connector"
	"github.com/automoto/parkour-gen/partition"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrOverlap is returned by Verify when two platforms intersect.
var ErrOverlap = errors.New("platforms overlap")

// Mode selects how platforms are produced.
type Mode int

const (
	// ModeGrid partitions the grid and lays one platform per cell.
	ModeGrid Mode = iota
	// ModeChain grows a linear chain from the grammar.
	ModeChain
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeChain:
		return "chain"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode accepts "grid" or "chain", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "grid":
		return ModeGrid, nil
	case "chain":
		return ModeChain, nil
	}
	return 0, fmt.Errorf("unknown mode %q, want grid or chain", s)
}

// Plan is everything one generation run decided. Platform indices in
// Connections and Route refer to Platforms.
type Plan struct {
	Mode        Mode
	Seed        int64
	Origin      r2.Vec
	Cells       []partition.Cell `json:",omitempty"`
	CellLength  float64          `json:",omitempty"` // world units per grid cell, grid mode only
	Platforms   []placement.Platform
	Obstacles   []placement.Obstacle   `json:",omitempty"`
	Connections []connector.Connection `json:",omitempty"`
	Decorations []placement.Obstacle   `json:",omitempty"`
	Route       []int                  `json:",omitempty"`
	Reachable   bool
	Skipped     int // platforms or cells abandoned after exhausting their attempts
}

// Start is the first platform, or nil for an empty plan.
func (p *Plan) Start() *placement.Platform {
	if len(p.Platforms) == 0 {
		return nil
	}
	return &p.Platforms[0]
}

// Finish is the last platform, or nil for an empty plan.
func (p *Plan) Finish() *placement.Platform {
	if len(p.Platforms) == 0 {
		return nil
	}
	return &p.Platforms[len(p.Platforms)-1]
}

// Verify checks that no two platforms overlap once shrunk by tolerance.
func Verify(p *Plan, tolerance float64) error {
	for i := range p.Platforms {
		a := p.Platforms[i].Footprint()
		for j := i + 1; j < len(p.Platforms); j++ {
			if placement.Overlaps(a, p.Platforms[j].Footprint(), tolerance) {
				return fmt.Errorf("%w: %d and %d", ErrOverlap, i, j)
			}
		}
	}
	return nil
}
