package component

import "image/color"

// Panel is a filled rectangle with an optional centered label.
type Panel struct {
	Name  string
	Fill  color.Color
	Label string
	// Layer orders drawing; lower layers draw first.
	Layer int
}

var PanelComponent = NewComponent[Panel]()
