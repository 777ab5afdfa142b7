package component

// LayoutAnchor selects the vertical edge a LayoutRect is measured from.
type LayoutAnchor string

const (
	AnchorTop    LayoutAnchor = "top"
	AnchorCenter LayoutAnchor = "center"
	AnchorBottom LayoutAnchor = "bottom"
)

// LayoutRect is the authored placement of an entity, resolved against the
// screen size by the layout pass. W <= 0 stretches to the screen width minus
// X on both sides.
type LayoutRect struct {
	X      float64
	Y      float64
	W      float64
	H      float64
	Anchor LayoutAnchor
}

var LayoutRectComponent = NewComponent[LayoutRect]()
