package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads a JSON file over the defaults. Fields absent from the file keep
// their default values; unknown fields are rejected.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat config %s: %w", cleanPath, err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", cleanPath, err)
	}
	return Parse(data)
}

// Parse decodes JSON over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first impossible parameter combination.
func (c *Config) Validate() error {
	p := c.Partition
	switch {
	case p.GridWidth <= 0 || p.GridHeight <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, p.GridWidth, p.GridHeight)
	case p.CellLength <= 0:
		return fmt.Errorf("%w: cell length must be positive, got %v", ErrInvalid, p.CellLength)
	case p.MinCellWidth < 1 || p.MinCellHeight < 1:
		return fmt.Errorf("%w: minimum cell must be at least 1x1", ErrInvalid)
	case p.SplitRate < 0:
		return fmt.Errorf("%w: split rate must not be negative", ErrInvalid)
	case p.MaxIterations <= 0:
		return fmt.Errorf("%w: partition iteration ceiling must be positive", ErrInvalid)
	}
	if p.UseMaxSize {
		w, h := p.MaxCell()
		if w < p.MinCellWidth || h < p.MinCellHeight {
			return fmt.Errorf("%w: maximum cell %dx%d below minimum %dx%d",
				ErrInvalid, w, h, p.MinCellWidth, p.MinCellHeight)
		}
	}

	l := c.Layout
	if l.BaseHeightMax < l.BaseHeightMin {
		return fmt.Errorf("%w: layout base height range inverted", ErrInvalid)
	}
	if l.MaxAttempts <= 0 || l.Thickness <= 0 {
		return fmt.Errorf("%w: layout attempts and thickness must be positive", ErrInvalid)
	}

	g := c.Grammar
	switch {
	case g.PlatformCount < 1:
		return fmt.Errorf("%w: platform count must be at least 1", ErrInvalid)
	case g.GridUnit <= 0:
		return fmt.Errorf("%w: grid unit must be positive", ErrInvalid)
	case g.ScaleMin <= 0 || g.ScaleMax < g.ScaleMin:
		return fmt.Errorf("%w: platform scale range %v..%v", ErrInvalid, g.ScaleMin, g.ScaleMax)
	case g.MaxAttempts <= 0:
		return fmt.Errorf("%w: grammar attempt ceiling must be positive", ErrInvalid)
	case g.Thickness <= 0:
		return fmt.Errorf("%w: platform thickness must be positive", ErrInvalid)
	}
	for name, r := range map[string]Range{
		"above height":    g.AboveHeight,
		"above gap":       g.AboveGap,
		"below height":    g.BelowHeight,
		"below gap":       g.BelowGap,
		"small jump":      g.SmallJumpGap,
		"long jump":       g.LongJumpGap,
		"vault spacing":   g.VaultSpacing,
		"vault thickness": g.VaultThickness,
	} {
		if r.Max < r.Min {
			return fmt.Errorf("%w: %s range inverted (%v..%v)", ErrInvalid, name, r.Min, r.Max)
		}
	}

	k := c.Connector
	if k.MantleMaxHeight < k.MantleMinHeight || k.WallRunMaxDistance < k.WallRunMinDistance {
		return fmt.Errorf("%w: connector threshold range inverted", ErrInvalid)
	}
	if k.WaypointSpacing <= 0 {
		return fmt.Errorf("%w: waypoint spacing must be positive", ErrInvalid)
	}

	if c.Preview.Width <= 2*c.Preview.Margin || c.Preview.Height <= 2*c.Preview.Margin {
		return fmt.Errorf("%w: preview %dx%d too small for margin %d",
			ErrInvalid, c.Preview.Width, c.Preview.Height, c.Preview.Margin)
	}
	return nil
}

// JSON encodes the configuration, indented, for presets and archives.
func (c *Config) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
