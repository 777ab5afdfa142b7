package component

// Opacity is the draw alpha of an entity in [0, 1].
type Opacity struct {
	Alpha float64
}

var OpacityComponent = NewComponent[Opacity]()
