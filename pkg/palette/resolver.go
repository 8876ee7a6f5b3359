package palette

import (
	"errors"
	"regexp"
)

// ErrEmptyPalette is returned when a resolver is built without schemes.
var ErrEmptyPalette = errors.New("palette has no colour schemes")

var courseCodePattern = regexp.MustCompile(`\b\d{3}\b`)

// CourseCode extracts the first standalone three-digit number in label, or
// "" when there is none. "CE 3A 141 (P)" -> "141".
func CourseCode(label string) string {
	return courseCodePattern.FindString(label)
}

// Resolver maps course labels to colour schemes
type Resolver struct {
	schemes  []ColorScheme
	fallback ColorScheme
	index    map[string]int
}

// New builds a resolver. Each code maps to schemes[position % len(schemes)];
// a code listed twice keeps its last position.
func New(codes []string, schemes []ColorScheme, fallback ColorScheme) (*Resolver, error) {
	if len(schemes) == 0 {
		return nil, ErrEmptyPalette
	}

	index := make(map[string]int, len(codes))
	for i, code := range codes {
		index[code] = i % len(schemes)
	}

	return &Resolver{
		schemes:  schemes,
		fallback: fallback,
		index:    index,
	}, nil
}

// Default returns the resolver for the built-in palette
func Default() *Resolver {
	r, _ := New(DefaultCodes, DefaultSchemes, DefaultScheme)
	return r
}

// Index returns the scheme position for label's course code
func (r *Resolver) Index(label string) (int, bool) {
	i, ok := r.index[CourseCode(label)]
	return i, ok
}

// Scheme returns the colour scheme for label, or the fallback when its code
// is missing or unknown.
func (r *Resolver) Scheme(label string) ColorScheme {
	if i, ok := r.Index(label); ok {
		return r.schemes[i]
	}
	return r.fallback
}

// Resolve picks the light or dark half of label's scheme for ctx
func (r *Resolver) Resolve(label string, ctx ThemeContext) Swatch {
	s := r.Scheme(label)
	if ctx.Dark() {
		return s.Dark()
	}
	return s.Light()
}
