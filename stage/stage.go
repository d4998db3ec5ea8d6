// Package stage is the rendering backend for the showcase: a minimal
// 3D quad stage projected onto the 2D screen, with screen-space pick
// bounds kept in a resolv space so the pointer can be tested against
// the animated geometry every frame.
package stage

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

const pickTag = "quad"

// Hit is one pick result. Data is whatever the caller attached to the
// quad at creation; Distance is the stage-space distance from the
// camera, so smaller is nearer.
type Hit struct {
	Data     any
	Distance float64
}

// Stage owns a set of quads, their pick space, and the camera that
// projects them. Exactly one frame-loop writer mutates a Stage.
type Stage struct {
	Camera *Camera

	quads []*Quad
	space *resolv.Space
	probe *resolv.Object

	drawOp ebiten.DrawImageOptions
}

func NewStage(camera *Camera) *Stage {
	s := &Stage{Camera: camera}
	s.rebuildSpace()
	return s
}

func (s *Stage) rebuildSpace() {
	w := int(s.Camera.ViewportW)
	h := int(s.Camera.ViewportH)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.space = resolv.NewSpace(w, h, 64, 64)
	s.probe = resolv.NewObject(-1, -1, 1, 1)
	s.space.Add(s.probe)
	for _, q := range s.quads {
		s.space.Add(q.pick)
		q.pick.Update()
	}
}

// CreateQuad adds a renderable to the stage. data is returned verbatim
// in pick hits so callers can map hits back to their own entities.
func (s *Stage) CreateQuad(front, back *ebiten.Image, w, h float64, data any) *Quad {
	q := &Quad{
		Front: front,
		Back:  back,
		W:     w,
		H:     h,
		Data:  data,
		stage: s,
		pick:  resolv.NewObject(-1e6, -1e6, 1, 1, pickTag),
	}
	q.pick.Data = q
	s.space.Add(q.pick)
	s.quads = append(s.quads, q)
	q.SetPose(Vec3{}, 0, 1)
	return q
}

// Resize re-derives the projection and rebuilds the pick space.
// Stale pick geometry is refreshed from each quad's last pose.
func (s *Stage) Resize(viewportW, viewportH float64) {
	s.Camera.Resize(viewportW, viewportH)
	s.rebuildSpace()
	for _, q := range s.quads {
		q.SetPose(q.pose.Position, q.pose.Rotation, q.pose.Scale)
	}
}

// Render draws all quads in painter's order, far to near.
func (s *Stage) Render(screen *ebiten.Image) {
	ordered := make([]*Quad, len(s.quads))
	copy(ordered, s.quads)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].pose.Position.Z < ordered[j].pose.Position.Z
	})
	for _, q := range ordered {
		q.draw(screen, &s.drawOp)
	}
}

// RaycastFromScreen tests the pointer, given in normalized device
// coordinates, against every quad's current pick bounds. Hits come
// back nearest first. Out-of-range coordinates hit nothing.
func (s *Stage) RaycastFromScreen(ndcX, ndcY float64) []Hit {
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return nil
	}
	px, py := s.Camera.NDCToScreen(ndcX, ndcY)

	s.probe.X = px
	s.probe.Y = py
	s.probe.Update()

	check := s.probe.Check(0, 0, pickTag)
	if check == nil {
		return nil
	}

	var hits []Hit
	for _, obj := range check.Objects {
		q, ok := obj.Data.(*Quad)
		if !ok {
			continue
		}
		// Cell-based checks are coarse, confirm actual containment.
		if px < obj.X || px > obj.X+obj.W || py < obj.Y || py > obj.Y+obj.H {
			continue
		}
		hits = append(hits, Hit{
			Data:     q.Data,
			Distance: s.Camera.Distance - q.pose.Position.Z,
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
