package config

import "image/color"

// PartitionConfig contains the binary space partition parameters
type PartitionConfig struct {
	// Grid
	GridWidth  int     // Grid cells along X
	GridHeight int     // Grid cells along Y
	CellLength float64 // World units per grid cell
	SplitRate  float64 // Scales the per-axis split probability, 0..2

	// Cell bounds, in grid cells
	MinCellWidth  int
	MinCellHeight int
	UseMaxSize    bool // Push oversized cells back for another split attempt
	MaxCellWidth  int  // 0 means GridWidth - MinCellWidth
	MaxCellHeight int  // 0 means GridHeight - MinCellHeight

	// Termination
	MaxCellRetries int // Pushbacks per oversized cell before it is accepted as is
	MaxIterations  int // Hard ceiling on stack pops
}

// LayoutConfig contains the cell-grid platform placement parameters
type LayoutConfig struct {
	BaseHeightMin   float64 // Lowest platform centre height
	BaseHeightMax   float64 // Highest platform centre height
	Thickness       float64 // Platform slab thickness
	MinJumpDistance float64 // Clearance kept between neighbouring platforms
	MaxAttempts     int     // Position attempts per cell
}

// Range is an inclusive-exclusive random draw interval
type Range struct {
	Min float64
	Max float64
}

// GrammarConfig contains the platform-chain generator parameters
type GrammarConfig struct {
	StartRule     string
	PlatformCount int // Includes the seed platform

	// Platform scale, in grid units per half extent
	ScaleMin  float64
	ScaleMax  float64
	Thickness float64 // Platform slab thickness
	GridUnit  float64 // Snapping unit and scale multiplier

	// Per-category offsets
	AboveHeight     Range // Height gained by Above placements
	AboveGap        Range // Horizontal gap for Above placements
	BelowHeight     Range // Height lost by Below placements
	BelowGap        Range // Horizontal gap for Below placements
	SmallJumpGap    Range
	SmallJumpHeight float64 // Symmetric height jitter for small jumps
	LongJumpGap     Range
	LongJumpHeight  float64 // Symmetric height jitter for long jumps
	ExtremeFactor   float64 // VeryHigh/VeryLow multiplier on Above/Below height

	// Validation
	Tolerance   float64 // Shrinks candidate boxes so touching platforms pass
	MaxAttempts int     // Consecutive failed attempts before a step is skipped

	// Obstacles
	WallRunHeight       float64
	WallRunThickness    float64
	WallRunRaise        float64 // Added to the slab centre height
	WallRunLength       float64 // Fraction of the corner distance
	MantleWallThickness float64
	MantleWallHeight    float64
	MantleWallSpread    float64 // Fraction of the platform length the wall may drift
	MantleBlockWidth    float64
	MantleStepDepth     float64
	MaxMantleSteps      int
	VaultSpacing        Range
	VaultThickness      Range
	VaultHeight         float64
	VaultLength         float64 // Fraction of the platform span
	MaxVaults           int

	// Meshes
	PlatformMeshes   []string
	StartMaterial    string
	FinishMaterial   string
	ObstacleMaterial string
}

// ConnectorConfig contains the traversal classification thresholds
type ConnectorConfig struct {
	MantleMinHeight             float64
	MantleMaxHeight             float64
	MantleMinHorizontalDistance float64
	MantleMaxDistance           float64
	WallRunMinDistance          float64
	WallRunMaxDistance          float64
	WallRunMaxHeight            float64
	LedgeGrabMaxDistance        float64
	LedgeGrabMinHeight          float64

	MinJumpDistance float64 // Gaps shorter than this are jumped, not wall-run

	// Mantle synthesis
	WaypointSpacing float64
	WaypointJitter  float64
	SupportRadius   float64
	SupportDepth    float64 // How far below a waypoint support is searched for

	// Wall-run synthesis
	SlabLength    float64 // Fraction of the edge distance
	SlabMaxHeight float64
	SlabThickness float64
	SlabMaterial  string
}

// DecorateConfig contains the background building ring parameters
type DecorateConfig struct {
	Enabled         bool
	Buffer          float64 // Distance from the course bounds to the first ring
	Layers          int
	LayerSpacing    float64
	BuildingSpacing float64
	SpawnHeight     float64 // Buildings rise or sink up to twice this
	ScaleMin        float64
	ScaleMax        float64
	Footprint       float64 // World units per building scale step
}

// PreviewConfig contains the PNG preview settings
type PreviewConfig struct {
	Width      int
	Height     int
	Margin     int
	Background color.RGBA
	CellLine   color.RGBA
	LowColor   color.RGBA // Platform tint at the lowest height
	HighColor  color.RGBA // Platform tint at the highest height
	Obstacle   color.RGBA
	Mantle     color.RGBA
	WallRun    color.RGBA
	LedgeGrab  color.RGBA
	Route      color.RGBA
	Label      color.RGBA
	ShowLabels bool
}

// Config aggregates every stage
type Config struct {
	Seed      int64 // 0 picks a clock seed
	Partition PartitionConfig
	Layout    LayoutConfig
	Grammar   GrammarConfig
	Connector ConnectorConfig
	Decorate  DecorateConfig
	Preview   PreviewConfig
}

// C is the process-wide configuration the CLI starts from.
var C *Config

func init() {
	C = Default()
}

// Default returns a fresh configuration with every default filled in.
func Default() *Config {
	return &Config{
		Partition: PartitionConfig{
			GridWidth:  10,
			GridHeight: 10,
			CellLength: 1000.0,
			SplitRate:  0.5,

			MinCellWidth:  2,
			MinCellHeight: 2,
			UseMaxSize:    false,
			MaxCellWidth:  5,
			MaxCellHeight: 5,

			MaxCellRetries: 32,
			MaxIterations:  10000,
		},
		Layout: LayoutConfig{
			BaseHeightMin:   -500.0,
			BaseHeightMax:   500.0,
			Thickness:       50.0,
			MinJumpDistance: 200.0,
			MaxAttempts:     15,
		},
		Grammar: GrammarConfig{
			StartRule:     "StartRule",
			PlatformCount: 10,

			ScaleMin:  10.0,
			ScaleMax:  65.0,
			Thickness: 60.0,
			GridUnit:  50.0,

			AboveHeight:     Range{Min: 120.0, Max: 220.0},
			AboveGap:        Range{Min: 0.0, Max: 100.0},
			BelowHeight:     Range{Min: 70.0, Max: 150.0},
			BelowGap:        Range{Min: 200.0, Max: 450.0},
			SmallJumpGap:    Range{Min: 200.0, Max: 450.0},
			SmallJumpHeight: 100.0,
			LongJumpGap:     Range{Min: 800.0, Max: 1500.0},
			LongJumpHeight:  100.0,
			ExtremeFactor:   2.5,

			Tolerance:   1.0,
			MaxAttempts: 12,

			WallRunHeight:       500.0,
			WallRunThickness:    50.0,
			WallRunRaise:        100.0,
			WallRunLength:       0.8,
			MantleWallThickness: 25.0,
			MantleWallHeight:    250.0,
			MantleWallSpread:    0.4,
			MantleBlockWidth:    600.0,
			MantleStepDepth:     100.0,
			MaxMantleSteps:      10,
			VaultSpacing:        Range{Min: 550.0, Max: 1050.0},
			VaultThickness:      Range{Min: 15.0, Max: 120.0},
			VaultHeight:         100.0,
			VaultLength:         0.9,
			MaxVaults:           6,

			PlatformMeshes:   []string{"roof_flat", "roof_vent", "roof_ac", "roof_tank"},
			StartMaterial:    "start",
			FinishMaterial:   "finish",
			ObstacleMaterial: "concrete",
		},
		Connector: ConnectorConfig{
			MantleMinHeight:             800.0,
			MantleMaxHeight:             2000.0,
			MantleMinHorizontalDistance: 500.0,
			MantleMaxDistance:           10000.0,
			WallRunMinDistance:          2000.0,
			WallRunMaxDistance:          5000.0,
			WallRunMaxHeight:            300.0,
			LedgeGrabMaxDistance:        300.0,
			LedgeGrabMinHeight:          500.0,

			MinJumpDistance: 650.0,

			WaypointSpacing: 300.0,
			WaypointJitter:  5.0,
			SupportRadius:   50.0,
			SupportDepth:    2000.0,

			SlabLength:    0.8,
			SlabMaxHeight: 350.0,
			SlabThickness: 50.0,
			SlabMaterial:  "concrete",
		},
		Decorate: DecorateConfig{
			Enabled:         true,
			Buffer:          8000.0,
			Layers:          3,
			LayerSpacing:    7500.0,
			BuildingSpacing: 2200.0,
			SpawnHeight:     5000.0,
			ScaleMin:        5.0,
			ScaleMax:        15.0,
			Footprint:       100.0,
		},
		Preview: PreviewConfig{
			Width:      1024,
			Height:     1024,
			Margin:     24,
			Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
			CellLine:   color.RGBA{R: 70, G: 70, B: 90, A: 255},
			LowColor:   color.RGBA{R: 40, G: 90, B: 200, A: 255},
			HighColor:  color.RGBA{R: 230, G: 120, B: 40, A: 255},
			Obstacle:   color.RGBA{R: 160, G: 160, B: 160, A: 255},
			Mantle:     color.RGBA{R: 90, G: 220, B: 120, A: 255},
			WallRun:    color.RGBA{R: 240, G: 220, B: 60, A: 255},
			LedgeGrab:  color.RGBA{R: 220, G: 80, B: 220, A: 255},
			Route:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Label:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
			ShowLabels: true,
		},
	}
}

// MaxCell returns the effective maximum cell size, applying the
// grid-minus-minimum fallback for unset bounds.
func (p PartitionConfig) MaxCell() (int, int) {
	w, h := p.MaxCellWidth, p.MaxCellHeight
	if w <= 0 {
		w = p.GridWidth - p.MinCellWidth
	}
	if h <= 0 {
		h = p.GridHeight - p.MinCellHeight
	}
	return w, h
}
