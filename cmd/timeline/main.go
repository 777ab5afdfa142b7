// Command timeline replays a prefab screen headlessly: it reveals the screen,
// intercepts one back request and prints when each run completes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/milk9111/animgroup/animate"
	"github.com/milk9111/animgroup/backnav"
	"github.com/milk9111/animgroup/common"
	"github.com/milk9111/animgroup/logging"
	"github.com/milk9111/animgroup/prefabs"
	"github.com/milk9111/animgroup/screen"
	"github.com/rs/zerolog"
)

func main() {
	prefab := flag.String("screen", "pause_menu", "prefab screen to replay")
	tps := flag.Int("tps", 60, "simulated ticks per second")
	maxTicks := flag.Int("max", 600, "give up after this many ticks per phase")
	debug := flag.Bool("debug", false, "log every run")
	flag.Parse()

	log := zerolog.Nop()
	if *debug {
		log = logging.NewConsole("timeline", true)
	}
	if err := run(os.Stdout, *prefab, *tps, *maxTicks, log); err != nil {
		fmt.Fprintln(os.Stderr, "timeline:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, prefab string, tps, maxTicks int, log zerolog.Logger) error {
	spec, err := prefabs.LoadScreenSpec(prefab)
	if err != nil {
		return err
	}

	step := common.TickStep(tps)
	var slot backnav.Slot
	hidden := false
	size := func() (float64, float64) { return common.BaseWidth, common.BaseHeight }
	s, err := prefabs.BuildScreen(spec, &slot, backnav.AfterHideFunc(func() { hidden = true }), size, log, screen.WithStep(step))
	if err != nil {
		return err
	}

	printDefaults(out, s.Registry())
	s.Foreground()

	// The first layout triggers the reveal, as it does in the game.
	s.Layout(common.BaseWidth, common.BaseHeight)
	fmt.Fprintf(out, "reveal: %d entities, longest %v\n", s.Registry().Len(), longest(s.Registry()))
	ticks, ok := tickUntil(s, maxTicks, func() bool { return !s.Animating() })
	if !ok {
		return fmt.Errorf("reveal did not complete within %d ticks", maxTicks)
	}
	fmt.Fprintf(out, "reveal complete after %d ticks (%v)\n", ticks, time.Duration(ticks)*step)

	if !slot.Dispatch() {
		fmt.Fprintln(out, "back: declined, host handles navigation")
		return nil
	}
	ticks, ok = tickUntil(s, maxTicks, func() bool { return hidden })
	if !ok {
		return fmt.Errorf("hide did not complete within %d ticks", maxTicks)
	}
	fmt.Fprintf(out, "back: hide complete after %d ticks (%v)\n", ticks, time.Duration(ticks)*step)
	return nil
}

func tickUntil(s *screen.Screen, limit int, done func() bool) (int, bool) {
	for i := 1; i <= limit; i++ {
		s.Update()
		if done() {
			return i, true
		}
	}
	return limit, false
}

// longest is the reveal duration of reg with no overrides.
func longest(reg *animate.Registry) time.Duration {
	var top time.Duration
	for _, e := range reg.Entries() {
		if d := reg.Defaults().For(e.Variant); d > top {
			top = d
		}
	}
	return top
}

func printDefaults(out io.Writer, reg *animate.Registry) {
	d := reg.Defaults()
	fmt.Fprintf(out, "defaults: top=%v bottom=%v alpha=%v delay=%v delay_on_start=%v back=%v\n",
		d.SlideFromTop, d.SlideFromBottom, d.Alpha, reg.DefaultDelay(), reg.DelayOnStart(), reg.AnimateOnBackButton())
}
