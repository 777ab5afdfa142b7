package animate

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("animate: unknown variant")

// Variant is the animation style assigned to an entity.
type Variant int

const (
	SlideFromTop Variant = iota
	SlideFromBottom
	AlphaAnimation
)

// Variants lists every variant in declaration order.
var Variants = [...]Variant{SlideFromTop, SlideFromBottom, AlphaAnimation}

func (v Variant) String() string {
	switch v {
	case SlideFromTop:
		return "slide_from_top"
	case SlideFromBottom:
		return "slide_from_bottom"
	case AlphaAnimation:
		return "alpha"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant accepts the snake_case names produced by String.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slide_from_top", "top":
		return SlideFromTop, nil
	case "slide_from_bottom", "bottom":
		return SlideFromBottom, nil
	case "alpha", "alpha_animation", "fade":
		return AlphaAnimation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
