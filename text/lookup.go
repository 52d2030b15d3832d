package text

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// boldThreshold separates regular from bold weights.
const boldThreshold = 600

// Lookup finds installed fonts by family name.
//
// The system font index is built by fontscan on first use and cached on
// disk in cacheDir, so only the first run on a machine pays for the scan.
// Lookup is safe for concurrent use.
type Lookup struct {
	cacheDir string

	once       sync.Once
	footprints []fontscan.Footprint
	err        error
}

// NewLookup creates a Lookup. An empty cacheDir selects the user cache
// directory.
func NewLookup(cacheDir string) *Lookup {
	return &Lookup{cacheDir: cacheDir}
}

func (l *Lookup) load() error {
	l.once.Do(func() {
		l.footprints, l.err = fontscan.SystemFonts(fontscanLogger{}, l.cacheDir)
		if l.err != nil {
			l.err = fmt.Errorf("text: scanning system fonts: %w", l.err)
		}
	})
	return l.err
}

// Find returns the installed font of the given family.
// With bold set, only faces of weight 600 or more match; otherwise the face
// closest to normal weight below that threshold is chosen. Upright styles
// win over italics.
func (l *Lookup) Find(family string, bold bool) (*FontSource, error) {
	if err := l.load(); err != nil {
		return nil, err
	}

	want := font.NormalizeFamily(family)
	target := font.WeightNormal
	if bold {
		target = font.WeightBold
	}

	var candidates []fontscan.Footprint
	for _, fp := range l.footprints {
		if fp.Family != want {
			continue
		}
		if (fp.Aspect.Weight >= boldThreshold) != bold {
			continue
		}
		candidates = append(candidates, fp)
	}
	if len(candidates) == 0 {
		weight := "regular"
		if bold {
			weight = "bold"
		}
		return nil, fmt.Errorf("%w: %s (%s)", ErrFontNotFound, family, weight)
	}

	score := func(fp fontscan.Footprint) float32 {
		d := float32(fp.Aspect.Weight - target)
		if d < 0 {
			d = -d
		}
		if fp.Aspect.Style == font.StyleItalic {
			d += 1000
		}
		return d
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := score(candidates[i]), score(candidates[j])
		if si != sj {
			return si < sj
		}
		a, b := candidates[i].Location, candidates[j].Location
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Index < b.Index
	})

	best := candidates[0].Location
	Logger().Debug("font resolved", "family", family, "bold", bold, "file", best.File, "index", best.Index)
	return NewFontSourceFromCollection(best.File, int(best.Index))
}

// Source is like Find but logs the failure and returns nil, which a Set
// treats as "use the fallback".
func (l *Lookup) Source(family string, bold bool) *FontSource {
	if family == "" {
		return nil
	}
	s, err := l.Find(family, bold)
	if err != nil {
		Logger().Warn("scalable font unavailable", "family", family, "bold", bold, "err", err)
		return nil
	}
	return s
}
