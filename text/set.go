package text

import "sync"

// Set is the regular/bold font pair a design draws with.
//
// Face never fails: a missing bold source falls back to the regular
// source, and a missing regular source (or an unusable size) falls back to
// the bitmap face. Faces are cached per size and weight.
type Set struct {
	Regular *FontSource
	Bold    *FontSource

	opts []FaceOption

	mu    sync.Mutex
	faces map[faceKey]*Face
}

type faceKey struct {
	size int
	bold bool
}

// NewSet creates a Set. Either source may be nil.
func NewSet(regular, bold *FontSource, opts ...FaceOption) *Set {
	return &Set{
		Regular: regular,
		Bold:    bold,
		opts:    opts,
		faces:   make(map[faceKey]*Face),
	}
}

// Scalable reports whether the set has at least one outline font.
func (s *Set) Scalable() bool {
	return s != nil && (s.Regular != nil || s.Bold != nil)
}

// Face returns the face for a pixel size and weight.
func (s *Set) Face(size int, bold bool) *Face {
	if s == nil || size <= 0 {
		return Bitmap()
	}

	src := s.Regular
	if bold && s.Bold != nil {
		src = s.Bold
	}
	if src == nil {
		return Bitmap()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := faceKey{size: size, bold: src == s.Bold && src != s.Regular}
	if f, ok := s.faces[key]; ok {
		return f
	}
	f, err := src.Face(float64(size), s.opts...)
	if err != nil {
		Logger().Warn("falling back to bitmap face", "font", src.Name(), "size", size, "err", err)
		return Bitmap()
	}
	if s.faces == nil {
		s.faces = make(map[faceKey]*Face)
	}
	s.faces[key] = f
	return f
}

// Close releases every cached face.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for k, f := range s.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.faces, k)
	}
	return first
}
