package clouds

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a position in normalized device coordinates (x, y, z).
// Memory layout is three tightly packed float32 values, matching the
// vertex attribute declared for slot 0.
type Vertex = mgl32.Vec3

// Color is an RGBA color with float components in [0, 1].
type Color mgl32.Vec4

// Color constants
var (
	ColorSkyBlue = Color{0, 0.597, 0.797, 1}
	ColorOrange  = Color{1, 0.5, 0.2, 1}
)

// RGBA returns the four components, in the argument order gl.ClearColor expects.
func (c Color) RGBA() (r, g, b, a float32) {
	return c[0], c[1], c[2], c[3]
}

// Clamped returns the color with every component clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		clampf(c[0], 0, 1),
		clampf(c[1], 0, 1),
		clampf(c[2], 0, 1),
		clampf(c[3], 0, 1),
	}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
