// Package demo defines the catalog of idiom demos and the runner that
// executes their variants.
//
// A demo is one theme (error signaling, collection pipelines, ...) shown
// several times over, each variant written the way a particular Go release
// made idiomatic. Variants are ordered oldest idiom first so a run reads as
// a walk through the language's history.
package demo

import (
	"context"

	"goidioms/internal/goversion"
	"goidioms/internal/ux"
)

// Variant is one rendition of a demo theme, written with the idioms of a
// single Go release.
type Variant struct {
	// ID is the stable slug used by --era and the picker ("classic",
	// "wrapped", "generic", ...).
	ID string

	// Title is a one-line description of the idiom being shown.
	Title string

	// Since is the release that made this rendition idiomatic.
	Since goversion.Version

	// Run executes the rendition, narrating through p. Expected failures
	// are part of the narration; a returned error means the demo itself
	// is broken.
	Run func(ctx context.Context, p *ux.Printer) error
}

// Demo groups the renditions of one theme.
type Demo struct {
	Name     string // registry key and CLI argument
	Title    string
	Summary  string
	Variants []Variant
}

// Variant returns the variant with the given ID.
func (d Demo) Variant(id string) (Variant, bool) {
	for _, v := range d.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantIDs returns the variant slugs in their pedagogical order.
func (d Demo) VariantIDs() []string {
	ids := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		ids[i] = v.ID
	}
	return ids
}

// Span reports the oldest and newest release covered by the demo.
func (d Demo) Span() (oldest, newest goversion.Version) {
	if len(d.Variants) == 0 {
		return goversion.Zero, goversion.Zero
	}
	oldest = d.Variants[0].Since
	newest = d.Variants[0].Since
	for _, v := range d.Variants[1:] {
		if goversion.Compare(v.Since, oldest) < 0 {
			oldest = v.Since
		}
		if goversion.Compare(v.Since, newest) > 0 {
			newest = v.Since
		}
	}
	return oldest, newest
}
