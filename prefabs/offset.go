package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/animgroup/animate"
	"github.com/rs/zerolog"
)

var ErrNoOffset = errors.New("prefabs: offset script does not assign offset")

// ScreenSize reports the current screen size in layout units.
type ScreenSize func() (width, height float64)

// CompileOffset compiles a tengo offset script into an OffsetProvider. The
// script sees screen_w and screen_h and must assign offset, e.g.
//
//	offset := screen_h / 3
//
// src may be inline source or the name of a .tengo file under scripts/. A
// script that fails at run time yields 0 and is logged.
func CompileOffset(src string, size ScreenSize, log zerolog.Logger) (animate.OffsetProvider, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	if strings.HasSuffix(src, ".tengo") {
		data, err := LoadScript(src)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load offset script %s: %w", src, err)
		}
		src = string(data)
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("screen_w", 0.0)
	_ = script.Add("screen_h", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile offset script: %w", err)
	}
	if !compiled.IsDefined("offset") {
		return nil, ErrNoOffset
	}

	return func() float64 {
		w, h := 0.0, 0.0
		if size != nil {
			w, h = size()
		}
		if err := compiled.Set("screen_w", w); err != nil {
			log.Error().Err(err).Msg("offset script: set screen_w")
			return 0
		}
		if err := compiled.Set("screen_h", h); err != nil {
			log.Error().Err(err).Msg("offset script: set screen_h")
			return 0
		}
		if err := compiled.Run(); err != nil {
			log.Error().Err(err).Msg("offset script: run")
			return 0
		}
		return compiled.Get("offset").Float()
	}, nil
}
