package heart

// TargetField holds the sampled curve and the targets derived from it for
// the current frame.
type TargetField struct {
	origin  []Point
	targets []Point
}

func NewTargetField(origin []Point) *TargetField {
	return &TargetField{
		origin:  origin,
		targets: make([]Point, len(origin)),
	}
}

// Update rescales every origin point by (kx, ky), moves it to center and
// returns the targets. The returned slice is reused by the next call.
func (f *TargetField) Update(kx, ky float64, center Point) []Point {
	for i, p := range f.origin {
		f.targets[i] = Point{X: kx*p.X + center.X, Y: ky*p.Y + center.Y}
	}
	return f.targets
}

func (f *TargetField) Len() int { return len(f.targets) }

// At returns the target computed by the last Update.
func (f *TargetField) At(i int) Point { return f.targets[i] }
