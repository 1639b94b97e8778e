package gamemath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseBlend returns the value between from and to at alpha in [0, 1],
// accelerating out of from and decelerating into to.
func EaseBlend(from, to, alpha float64) float64 {
	alpha = ClampFloat(alpha, 0, 1)
	tw := gween.New(float32(0), 1, 1, ease.InOutQuad)
	eased, _ := tw.Set(float32(alpha))
	return from + (to-from)*float64(eased)
}
