package scene

import "math"

// Ray is a half line starting at Origin.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneZ returns the ray parameter where it crosses the plane z.
// Intersections behind the origin are reported as misses.
func (r Ray) IntersectPlaneZ(z float64) (float64, bool) {
	if math.Abs(r.Direction.Z) < 1e-12 {
		return 0, false
	}
	t := (z - r.Origin.Z) / r.Direction.Z
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Hit describes a ray intersection with a flat card.
type Hit struct {
	Distance float64
	Point    Vec3
	// UV is the hit position inside the card, (0,0) top-left to (1,1)
	// bottom-right.
	UV Vec2
}

// IntersectCard intersects the ray with an axis-aligned card of size w×h
// centred on center.
func (r Ray) IntersectCard(center Vec3, w, h float64) (Hit, bool) {
	t, ok := r.IntersectPlaneZ(center.Z)
	if !ok {
		return Hit{}, false
	}
	p := r.At(t)
	rect := RectCentered(center.XY(), w, h)
	if !rect.Contains(p.XY()) {
		return Hit{}, false
	}
	return Hit{
		Distance: t,
		Point:    p,
		UV: Vec2{
			X: (p.X - rect.Min.X) / w,
			Y: (rect.Max.Y - p.Y) / h,
		},
	}, true
}

// IntersectTiltedCard intersects the ray with a w×h card centred on center and
// tilted by rot (Y rotation first, then X). UV is measured on the card itself.
func (r Ray) IntersectTiltedCard(center Vec3, w, h float64, rot Vec2) (Hit, bool) {
	toLocal := func(v Vec3) Vec3 { return v.RotateX(-rot.X).RotateY(-rot.Y) }
	local := Ray{
		Origin:    toLocal(r.Origin.Sub(center)),
		Direction: toLocal(r.Direction),
	}
	hit, ok := local.IntersectCard(Vec3{}, w, h)
	if !ok {
		return Hit{}, false
	}
	hit.Point = r.At(hit.Distance)
	return hit, true
}
