package generate

import (
	"github.com/solarveyo/iconkit"
	"github.com/solarveyo/iconkit/config"
	"github.com/solarveyo/iconkit/text"
)

// ResolveFonts builds the font set described by cfg.
//
// Explicit font files are tried first, then the installed family. A font
// that cannot be loaded is logged and skipped; the configured fallback
// fills whatever is still missing.
func ResolveFonts(cfg config.Fonts) *text.Set {
	log := iconkit.Logger()

	var lookup *text.Lookup
	find := func(family string, bold bool) *text.FontSource {
		if family == "" {
			return nil
		}
		if lookup == nil {
			lookup = text.NewLookup(cfg.CacheDir)
		}
		return lookup.Source(family, bold)
	}

	regular := fromFile(cfg.Regular)
	if regular == nil {
		regular = find(cfg.Family, false)
	}
	bold := fromFile(cfg.Bold)
	if bold == nil {
		bold = find(cfg.BoldFamilyOrDefault(), true)
	}

	if cfg.Fallback == config.FallbackEmbedded {
		if regular == nil {
			regular = text.Embedded(false)
		}
		if bold == nil {
			bold = text.Embedded(true)
		}
	}

	switch {
	case regular == nil && bold == nil:
		log.Warn("no scalable font available, drawing labels with the bitmap face")
	case bold == nil:
		log.Info("no bold font, bold labels use the regular face", "regular", regular.Name())
	default:
		log.Debug("fonts resolved", "regular", name(regular), "bold", name(bold))
	}
	return text.NewSet(regular, bold)
}

func fromFile(path string) *text.FontSource {
	if path == "" {
		return nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		iconkit.Logger().Warn("font file unusable", "path", path, "err", err)
		return nil
	}
	return src
}

func name(src *text.FontSource) string {
	if src == nil {
		return ""
	}
	return src.Name()
}
