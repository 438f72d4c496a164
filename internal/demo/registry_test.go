package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goidioms/internal/goversion"
	"goidioms/internal/ux"
)

func noopRun(context.Context, *ux.Printer) error { return nil }

func testDemo(name string, variantIDs ...string) Demo {
	d := Demo{Name: name, Title: "Demo " + name, Summary: "summary"}
	for i, id := range variantIDs {
		d.Variants = append(d.Variants, Variant{
			ID:    id,
			Title: id + " rendition",
			Since: goversion.V(1, 13+i),
			Run:   noopRun,
		})
	}
	return d
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testDemo("lookup", "classic", "wrapped")))
	require.NoError(t, r.Register(testDemo("catalog", "classic", "generic")))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"lookup", "catalog"}, r.Names(), "registration order is preserved")

	d, ok := r.Get("lookup")
	require.True(t, ok)
	assert.Equal(t, []string{"classic", "wrapped"}, d.VariantIDs())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryEras(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testDemo("a", "classic", "wrapped")))
	require.NoError(t, r.Register(testDemo("b", "classic", "generic")))

	assert.Equal(t, []string{"classic", "wrapped", "generic"}, r.Eras())
}

func TestRegistryRejects(t *testing.T) {
	valid := func() Demo { return testDemo("d", "one", "two") }

	tests := []struct {
		name   string
		mutate func(*Demo)
		want   string
	}{
		{"empty name", func(d *Demo) { d.Name = "" }, "name required"},
		{"no variants", func(d *Demo) { d.Variants = nil }, "no variants"},
		{"variant without id", func(d *Demo) { d.Variants[1].ID = "" }, "has no id"},
		{"duplicate variant", func(d *Demo) { d.Variants[1].ID = "one" }, "duplicate variant"},
		{"nil run", func(d *Demo) { d.Variants[0].Run = nil }, "no run function"},
		{"zero since", func(d *Demo) { d.Variants[0].Since = goversion.Zero }, "no since release"},
		{"out of order", func(d *Demo) {
			d.Variants[0].Since = goversion.V(1, 21)
			d.Variants[1].Since = goversion.V(1, 13)
		}, "chronological order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			d := valid()
			tt.mutate(&d)
			err := r.Register(d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("duplicate demo", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(valid()))
		err := r.Register(valid())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.MustRegister(Demo{}) })
	assert.NotPanics(t, func() { r.MustRegister(testDemo("ok", "classic")) })
}

func TestDemoSpan(t *testing.T) {
	d := testDemo("d", "a", "b", "c")
	oldest, newest := d.Span()
	assert.Equal(t, goversion.V(1, 13), oldest)
	assert.Equal(t, goversion.V(1, 15), newest)

	empty := Demo{}
	oldest, newest = empty.Span()
	assert.True(t, oldest.IsZero())
	assert.True(t, newest.IsZero())
}
