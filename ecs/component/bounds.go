package component

// Bounds is the measured extent of an entity. It is written by the host's
// layout pass; until then both fields are zero.
type Bounds struct {
	W float64
	H float64
}

var BoundsComponent = NewComponent[Bounds]()
