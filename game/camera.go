package game

// Camera is the viewport into the world. It smoothly follows the player
// and converts between world and screen coordinates for the renderer.
type Camera struct {
	Pos    Vec2 // camera center in world coordinates
	Width  float64
	Height float64
}

// NewCamera creates a camera with the given viewport size, centered on
// the world origin until the first Follow.
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow eases the camera toward the target. The fixed factor gives the
// follow a slight lag so fast movement reads on screen.
func (c *Camera) Follow(target Vec2) {
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(0.1))
}

// Center snaps the camera onto the target immediately.
func (c *Camera) Center(target Vec2) {
	c.Pos = target
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(w Vec2) Vec2 {
	return Vec2{
		X: w.X - c.Pos.X + c.Width/2,
		Y: w.Y - c.Pos.Y + c.Height/2,
	}
}

// OnScreen reports whether a circle at world position w with the given
// radius is worth drawing, with a small margin.
func (c *Camera) OnScreen(w Vec2, radius float64) bool {
	s := c.WorldToScreen(w)
	margin := radius + 32
	return s.X >= -margin && s.X <= c.Width+margin &&
		s.Y >= -margin && s.Y <= c.Height+margin
}
