package connector

import (
	"log"
	"math"

	"github.com/automoto/parkour-gen/collision"
	"github.com/automoto/parkour-gen/config"
	"github.com/automoto/parkour-gen/rng"
	"github.com/automoto/parkour-gen/shared/gamemath"
	"github.com/automoto/parkour-gen/shared/placement"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rejection reasons recorded on None connections.
const (
	ReasonNoMechanic  = "no mechanic"
	ReasonDegenerate  = "degenerate edges"
	ReasonTooClose    = "too close"
	ReasonTooSteep    = "too steep"
	ReasonBlocked     = "path blocked"
	ReasonPlatformWay = "platform in the way"
)

// Waypoint is one point of a mantle path. Supported is false when nothing
// was found underneath it.
type Waypoint struct {
	Point     r3.Vec
	Supported bool
}

// Connection is the traversal between platforms A and B, indices into the
// platform set. Mantle connections carry waypoints and wall-run connections
// a slab; ledge grabs carry no geometry.
type Connection struct {
	A         int
	B         int
	Type      Type
	Waypoints []Waypoint          `json:",omitempty"`
	Slab      *placement.Obstacle `json:",omitempty"`
	Reason    string              `json:",omitempty"` // why a classified pair became None
}

// Connector runs the connector pass over one platform set.
type Connector struct {
	cfg       config.ConnectorConfig
	platforms []placement.Platform
	query     collision.Query
	src       rng.Source
}

// New creates a Connector over platforms. query answers the support queries
// and clear-path traces.
func New(cfg config.ConnectorConfig, platforms []placement.Platform, query collision.Query, src rng.Source) *Connector {
	return &Connector{cfg: cfg, platforms: platforms, query: query, src: src}
}

// ConnectAll classifies every unordered pair and returns the connections
// that are not None, in pair order.
func (c *Connector) ConnectAll() []Connection {
	var out []Connection
	rejected := 0
	for i := range c.platforms {
		for j := i + 1; j < len(c.platforms); j++ {
			conn := c.Connect(i, j)
			if conn.Type == None {
				if conn.Reason != ReasonNoMechanic {
					rejected++
				}
				continue
			}
			out = append(out, conn)
		}
	}
	log.Printf("Connectors: %d placed, %d rejected", len(out), rejected)
	return out
}

// Connect classifies platforms a and b and synthesizes the geometry for the
// chosen mechanic. A pair whose synthesis fails comes back as None with a
// reason.
func (c *Connector) Connect(a, b int) Connection {
	pa, pb := c.platforms[a], c.platforms[b]
	conn := Connection{A: a, B: b}

	dist := gamemath.HorizontalDistance(pa.Position, pb.Position)
	dz := math.Abs(gamemath.HeightDifference(pa.Position, pb.Position))

	switch Classify(dist, dz, c.cfg) {
	case Mantle:
		wps, reason := c.mantle(pa, pb)
		if reason != "" {
			conn.Reason = reason
			return conn
		}
		conn.Type, conn.Waypoints = Mantle, wps
	case WallRun:
		slab, reason := c.wallRun(a, b)
		if reason != "" {
			conn.Reason = reason
			return conn
		}
		conn.Type, conn.Slab = WallRun, &slab
	case LedgeGrab:
		conn.Type = LedgeGrab
	default:
		conn.Reason = ReasonNoMechanic
	}
	return conn
}
