package component

// Transform is the laid-out position of an entity. OffsetY is a translation
// applied on top of Y at draw time; slide animations drive it and leave X/Y
// untouched so layout stays authoritative.
type Transform struct {
	X       float64
	Y       float64
	OffsetY float64
}

var TransformComponent = NewComponent[Transform]()
