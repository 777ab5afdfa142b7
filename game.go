package main

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/animgroup/backnav"
	"github.com/milk9111/animgroup/common"
	"github.com/milk9111/animgroup/ecs/system"
	"github.com/milk9111/animgroup/prefabs"
	"github.com/milk9111/animgroup/screen"
	"github.com/rs/zerolog"
)

var backgroundColor = color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff}

// Game hosts a stack of animated screens over a root menu. It owns the
// back-navigation slot: Escape or Backspace is offered to the installed
// screen first and quits the game when nobody handles it.
type Game struct {
	log      zerolog.Logger
	slot     backnav.Slot
	renderer *system.RenderSystem
	menu     *ebitenui.UI
	watcher  *prefabs.Watcher

	stack   []*screen.Screen
	pending []*screen.Screen // pushed, waiting for their first layout
}

func NewGame(log zerolog.Logger, startScreen string, watch bool) (*Game, error) {
	g := &Game{
		log:      log,
		renderer: system.NewRenderSystem(),
	}
	g.menu = NewMenuUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Warn().Err(err).Msg("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	if startScreen != "" {
		if err := g.pushScreen(startScreen); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) Update() error {
	g.reloadChanged()

	// Layout pass: newly pushed screens are measured once the frame size is
	// known, which also triggers their first reveal.
	for _, s := range g.pending {
		s.Layout(common.BaseWidth, common.BaseHeight)
	}
	g.pending = g.pending[:0]

	if backPressed() && !g.slot.Dispatch() {
		if len(g.stack) == 0 {
			return ebiten.Termination
		}
		// Unhandled by the top screen: pop it without animating.
		g.popScreen(g.top())
	}

	if len(g.stack) == 0 {
		g.menu.Update()
	}
	// Snapshot: after-hide hooks may pop screens during the update.
	for _, s := range append([]*screen.Screen(nil), g.stack...) {
		s.Update()
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	g.menu.Draw(dst)
	for _, s := range g.stack {
		g.renderer.Draw(s.World(), dst)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func backPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

func (g *Game) openScreen(prefab string) {
	if err := g.pushScreen(prefab); err != nil {
		g.log.Error().Err(err).Str("prefab", prefab).Msg("open screen")
	}
}

func (g *Game) buildScreen(prefab string) (*screen.Screen, error) {
	spec, err := prefabs.LoadScreenSpec(prefab)
	if err != nil {
		return nil, err
	}
	var s *screen.Screen
	hook := backnav.AfterHideFunc(func() { g.popScreen(s) })
	size := func() (float64, float64) { return common.BaseWidth, common.BaseHeight }
	s, err = prefabs.BuildScreen(spec, &g.slot, hook, size, g.log, screen.WithStep(common.TickStep(ebiten.TPS())))
	return s, err
}

func (g *Game) pushScreen(prefab string) error {
	s, err := g.buildScreen(prefab)
	if err != nil {
		return err
	}
	if top := g.top(); top != nil {
		top.Background()
	}
	g.stack = append(g.stack, s)
	g.pending = append(g.pending, s)
	s.Foreground()
	g.log.Info().Str("screen", s.Name()).Int("depth", len(g.stack)).Msg("screen pushed")
	return nil
}

// popScreen removes s if it is still on the stack. Repeated back presses can
// finish more than one hide of the same screen, so popping twice is a no-op.
func (g *Game) popScreen(s *screen.Screen) {
	idx := -1
	for i, o := range g.stack {
		if o == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.Background()
	g.stack = append(g.stack[:idx], g.stack[idx+1:]...)
	if top := g.top(); top != nil {
		top.Foreground()
	}
	g.log.Info().Str("screen", s.Name()).Int("depth", len(g.stack)).Msg("screen popped")
}

func (g *Game) top() *screen.Screen {
	if len(g.stack) == 0 {
		return nil
	}
	return g.stack[len(g.stack)-1]
}

// reloadChanged rebuilds open screens whose prefab changed on disk.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		for i, s := range g.stack {
			// Script edits can affect any screen; spec edits only their own.
			if filepath.Ext(name) != ".tengo" && s.Name() != base {
				continue
			}
			rebuilt, err := g.buildScreen(s.Name())
			if err != nil {
				g.log.Error().Err(err).Str("file", name).Msg("reload screen")
				continue
			}
			s.Background()
			g.stack[i] = rebuilt
			g.pending = append(g.pending, rebuilt)
			if i == len(g.stack)-1 {
				rebuilt.Foreground()
			}
			g.log.Info().Str("screen", rebuilt.Name()).Msg("screen reloaded")
		}
	}
}
