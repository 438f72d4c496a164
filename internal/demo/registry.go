package demo

import (
	"errors"
	"fmt"

	"goidioms/internal/goversion"
)

// Lookup failures the CLI matches on.
var (
	ErrUnknownDemo    = errors.New("unknown demo")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Registry holds the registered demos in registration order.
type Registry struct {
	demos  []Demo
	byName map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a demo. Demos are hand-assembled, so a rejected one is a
// programming error; the checks here keep the catalog honest rather than
// guard against hostile input.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return errors.New("demo name required")
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("demo %q already registered", d.Name)
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("demo %q has no variants", d.Name)
	}

	seen := make(map[string]bool, len(d.Variants))
	prev := goversion.Zero
	for i, v := range d.Variants {
		if v.ID == "" {
			return fmt.Errorf("demo %q: variant %d has no id", d.Name, i)
		}
		if seen[v.ID] {
			return fmt.Errorf("demo %q: duplicate variant %q", d.Name, v.ID)
		}
		seen[v.ID] = true
		if v.Run == nil {
			return fmt.Errorf("demo %q: variant %q has no run function", d.Name, v.ID)
		}
		if v.Since.IsZero() {
			return fmt.Errorf("demo %q: variant %q has no since release", d.Name, v.ID)
		}
		// Oldest idiom first, so a run reads chronologically.
		if goversion.Compare(v.Since, prev) < 0 {
			return fmt.Errorf("demo %q: variant %q (%s) out of chronological order", d.Name, v.ID, v.Since)
		}
		prev = v.Since
	}

	r.byName[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)
	return nil
}

// MustRegister is Register for the hand-built catalog.
func (r *Registry) MustRegister(d Demo) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get returns the demo registered under name.
func (r *Registry) Get(name string) (Demo, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Demo{}, false
	}
	return r.demos[i], true
}

// Names returns demo names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// Demos returns the demos in registration order.
func (r *Registry) Demos() []Demo {
	out := make([]Demo, len(r.demos))
	copy(out, r.demos)
	return out
}

// Len reports the number of registered demos.
func (r *Registry) Len() int {
	return len(r.demos)
}

// Eras returns the union of variant slugs across all demos, first-seen
// order. The runner checks requested eras against it.
func (r *Registry) Eras() []string {
	var eras []string
	seen := make(map[string]bool)
	for _, d := range r.demos {
		for _, v := range d.Variants {
			if !seen[v.ID] {
				seen[v.ID] = true
				eras = append(eras, v.ID)
			}
		}
	}
	return eras
}
