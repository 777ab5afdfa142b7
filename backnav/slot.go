// Package backnav routes back-navigation requests from a host to at most one
// listener, and bridges them to hide animations.
package backnav

// Listener consumes a back-navigation request. BackPressed reports whether
// the request was handled; false lets the host fall back to its default.
type Listener interface {
	BackPressed() bool
}

// Token identifies one claim of a Slot.
type Token uint64

// Slot is the host's single-listener interception point. The last claimer
// wins; Release only clears the slot for the claim that currently holds it.
type Slot struct {
	listener Listener
	holder   Token
	next     Token
}

// Claim installs l, replacing any current listener, and returns the token
// to release it with.
func (s *Slot) Claim(l Listener) Token {
	s.next++
	s.listener = l
	s.holder = s.next
	return s.holder
}

// Release clears the slot if t is still the current claim. It reports whether
// anything was cleared.
func (s *Slot) Release(t Token) bool {
	if t == 0 || s.holder != t {
		return false
	}
	s.listener = nil
	s.holder = 0
	return true
}

// Holds reports whether t is the current claim.
func (s *Slot) Holds(t Token) bool {
	return t != 0 && s.holder == t
}

// Empty reports whether no listener is installed.
func (s *Slot) Empty() bool {
	return s.listener == nil
}

// Dispatch forwards a back request to the installed listener. It returns
// false when the slot is empty or the listener declined.
func (s *Slot) Dispatch() bool {
	if s.listener == nil {
		return false
	}
	return s.listener.BackPressed()
}
