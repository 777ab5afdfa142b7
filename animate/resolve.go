package animate

import "time"

// optDuration is a duration that may be absent.
type optDuration struct {
	d  time.Duration
	ok bool
}

func some(d time.Duration) optDuration { return optDuration{d: d, ok: true} }

func (o optDuration) or(fallback time.Duration) time.Duration {
	if o.ok {
		return o.d
	}
	return fallback
}

// max keeps the larger of two optional durations; an absent side loses.
func (o optDuration) max(other optDuration) optDuration {
	switch {
	case !o.ok:
		return other
	case !other.ok:
		return o
	case other.d > o.d:
		return other
	default:
		return o
	}
}

func (o Overrides) lookup(v Variant) optDuration {
	if d, ok := o[v]; ok {
		return some(d)
	}
	return optDuration{}
}

// effectiveDuration is the override for v when present, else its default.
func effectiveDuration(v Variant, overrides Overrides, defaults Durations) time.Duration {
	return overrides.lookup(v).or(defaults.For(v))
}

// longestDuration picks the duration that carries the completion callback.
//
// overrideMax is the largest override among present variants and defaultMax
// the largest default among present variants that have no override. The
// result is defaultMax when no override applies or when defaultMax exceeds
// overrideMax, otherwise overrideMax; 0 when nothing is present. This is the
// largest effective duration of the run, so some pair always matches it.
func longestDuration(present []Variant, overrides Overrides, defaults Durations) time.Duration {
	var overrideMax, defaultMax optDuration
	for _, v := range present {
		if o := overrides.lookup(v); o.ok {
			overrideMax = overrideMax.max(o)
			continue
		}
		defaultMax = defaultMax.max(some(defaults.For(v)))
	}
	if !overrideMax.ok || (defaultMax.ok && defaultMax.d > overrideMax.d) {
		return defaultMax.or(0)
	}
	return overrideMax.d
}

// presentVariants returns the distinct variants of entries in first-seen
// order.
func presentVariants(entries []Entry) []Variant {
	var seen [len(Variants)]bool
	out := make([]Variant, 0, len(Variants))
	for _, e := range entries {
		idx := int(e.Variant)
		if idx < 0 || idx >= len(seen) || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, e.Variant)
	}
	return out
}
