package animate

import "github.com/milk9111/animgroup/ecs/system"

// pose is the start and end value of one entity's animated property.
type pose struct {
	property system.Property
	from     float64
	to       float64
}

// poseFor returns the transition for variant v towards visible. offset is
// the slide distance and is ignored by AlphaAnimation.
func poseFor(v Variant, visible bool, offset float64) pose {
	switch v {
	case SlideFromTop:
		return slide(-offset, visible)
	case SlideFromBottom:
		return slide(offset, visible)
	default:
		if visible {
			return pose{property: system.PropertyOpacity, from: 0, to: 1}
		}
		return pose{property: system.PropertyOpacity, from: 1, to: 0}
	}
}

// slide moves between the resting position and the signed hidden offset.
func slide(hidden float64, visible bool) pose {
	if visible {
		return pose{property: system.PropertyOffsetY, from: hidden, to: 0}
	}
	return pose{property: system.PropertyOffsetY, from: 0, to: hidden}
}
