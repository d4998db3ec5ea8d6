package stage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

// Pose is the committed per-frame transform of a renderable.
type Pose struct {
	Position Vec3
	Rotation float64 // radians around the vertical axis; 0 = front facing
	Scale    float64 // uniform
}

// Quad is a double-faced card-shaped renderable. Rotation around the
// vertical axis is projected as a horizontal squash; past a quarter
// turn the back face shows. Callers treat a Quad as an opaque handle:
// SetPose is the only mutation after creation.
type Quad struct {
	Front *ebiten.Image
	Back  *ebiten.Image

	W, H float64 // stage units
	Data any     // caller identity, returned in pick hits

	stage *Stage
	pose  Pose
	pick  *resolv.Object
}

func (q *Quad) Pose() Pose {
	return q.pose
}

// SetPose commits a transform and refreshes the quad's screen-space
// pick bounds so that picking always tests the animated geometry.
func (q *Quad) SetPose(position Vec3, rotation, scale float64) {
	q.pose = Pose{Position: position, Rotation: rotation, Scale: scale}

	sx, sy, pixels, ok := q.stage.Camera.Project(position)
	if !ok {
		// Behind the camera, park the pick box where nothing hits it.
		q.pick.X, q.pick.Y = -1e6, -1e6
		q.pick.Update()
		return
	}

	w := q.W * pixels * scale * math.Abs(math.Cos(rotation))
	h := q.H * pixels * scale
	if w < 1e-3 {
		w = 1e-3
	}
	q.pick.X = sx - w/2
	q.pick.Y = sy - h/2
	q.pick.W = w
	q.pick.H = h
	q.pick.Update()
}

// draw renders the quad onto screen. The face is chosen from the flip
// angle: cos > 0 shows the front, otherwise the back.
func (q *Quad) draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	sx, sy, pixels, ok := q.stage.Camera.Project(q.pose.Position)
	if !ok {
		return
	}

	facing := math.Cos(q.pose.Rotation)
	img := q.Front
	if facing < 0 {
		img = q.Back
	}
	if img == nil {
		return
	}

	squash := math.Abs(facing)
	if squash < 1e-4 {
		return // edge-on, nothing visible
	}

	bounds := img.Bounds()
	w := q.W * pixels * q.pose.Scale * squash
	h := q.H * pixels * q.pose.Scale

	op.GeoM.Reset()
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(sx-w/2, sy-h/2)
	screen.DrawImage(img, op)
}
