package animate

import "time"

// Durations holds one default duration per variant. Being a struct rather
// than a map, every variant always has an entry.
type Durations struct {
	SlideFromTop    time.Duration
	SlideFromBottom time.Duration
	Alpha           time.Duration
}

// DefaultDurations returns the library defaults.
func DefaultDurations() Durations {
	return Durations{
		SlideFromTop:    225 * time.Millisecond,
		SlideFromBottom: 225 * time.Millisecond,
		Alpha:           300 * time.Millisecond,
	}
}

// For returns the duration configured for v. Unknown variants resolve to 0.
func (d Durations) For(v Variant) time.Duration {
	switch v {
	case SlideFromTop:
		return d.SlideFromTop
	case SlideFromBottom:
		return d.SlideFromBottom
	case AlphaAnimation:
		return d.Alpha
	default:
		return 0
	}
}

// With returns a copy of d with v set to dur.
func (d Durations) With(v Variant, dur time.Duration) Durations {
	switch v {
	case SlideFromTop:
		d.SlideFromTop = dur
	case SlideFromBottom:
		d.SlideFromBottom = dur
	case AlphaAnimation:
		d.Alpha = dur
	}
	return d
}

// Overrides replaces default durations for the variants it names, for a
// single run.
type Overrides map[Variant]time.Duration

// Uniform returns overrides that give every variant the same duration.
func Uniform(d time.Duration) Overrides {
	o := make(Overrides, len(Variants))
	for _, v := range Variants {
		o[v] = d
	}
	return o
}
