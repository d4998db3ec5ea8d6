package stage

// Camera is a fixed point camera looking down the -Z axis at the stage
// origin. Projection is a plain perspective divide: a point at Z gets
// drawn at FocalLength/(Distance-Z) pixels per stage unit, centered on
// the viewport. OriginY shifts the whole viewport down the screen,
// which is how the sticky section travels with page scroll.
type Camera struct {
	FocalLength float64 // pixels per stage unit at Distance 1
	Distance    float64 // camera Z position, stage units

	ViewportW float64
	ViewportH float64
	OriginY   float64 // top of the viewport in screen pixels
}

func NewCamera(focal, distance, viewportW, viewportH float64) *Camera {
	return &Camera{
		FocalLength: focal,
		Distance:    distance,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
	}
}

// Resize re-derives the projection for a new viewport. Must be called
// before the next frame's progress computation after a window resize.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Project maps a stage-space point to screen pixels plus the pixels-per-unit
// scale at that depth. Points at or behind the camera are not drawable.
func (c *Camera) Project(p Vec3) (screenX, screenY, scale float64, ok bool) {
	depth := c.Distance - p.Z
	if depth <= 0 {
		return 0, 0, 0, false
	}
	scale = c.FocalLength / depth
	screenX = c.ViewportW/2 + p.X*scale
	screenY = c.OriginY + c.ViewportH/2 - p.Y*scale
	return screenX, screenY, scale, true
}

// ScreenToNDC converts window pixels to normalized device coordinates
// in [-1,1], with +Y up.
func (c *Camera) ScreenToNDC(x, y float64) (ndcX, ndcY float64) {
	ndcX = x/c.ViewportW*2 - 1
	ndcY = 1 - y/c.ViewportH*2
	return ndcX, ndcY
}

// NDCToScreen is the inverse of ScreenToNDC.
func (c *Camera) NDCToScreen(ndcX, ndcY float64) (x, y float64) {
	x = (ndcX + 1) / 2 * c.ViewportW
	y = (1 - ndcY) / 2 * c.ViewportH
	return x, y
}
