package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goidioms/internal/ux"
)

// Result holds either a value or the error that prevented one: the
// expected-value style, where failure rides inside the return type instead
// of alongside it.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the value and error in the conventional two-value shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// OrElse returns the value, or fallback when the result failed.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// MapErr rewrites the error of a failed result and leaves values alone.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Fail[T](fn(r.err))
}

// Then chains a dependent step that can itself fail; failures skip fn and
// flow through. Methods cannot introduce type parameters, so Then and Map
// are package functions.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return fn(r.value)
}

// Map applies fn to a successful result and passes failures through
// untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// findResult adapts the wrapped-era lookup into a single-valued return.
func (d *Directory) findResult(id int) Result[User] {
	u, err := d.findWrapped(id)
	if err != nil {
		return Fail[User](err)
	}
	return Ok(u)
}

func runResult(ctx context.Context, p *ux.Printer) error {
	d := NewDirectory()

	email := Then(d.findResult(2), func(u User) Result[string] {
		if u.Email == "" {
			return Fail[string](fmt.Errorf("user %d has no email on file", u.ID))
		}
		return Ok(u.Email)
	})
	addr, err := email.Get()
	if err != nil {
		return fmt.Errorf("seed user 2 should resolve: %w", err)
	}
	p.Resultf("Then chained lookup(2) into its email: %s", addr)

	shout := Map(d.findResult(3), func(u User) string { return strings.ToUpper(u.Name) })
	if !shout.IsOk() {
		return errors.New("lookup of 3 should succeed")
	}
	p.Resultf("Map uppercased user 3: %s", shout.OrElse("GUEST"))

	missing := Map(d.findResult(999), func(u User) string { return strings.ToUpper(u.Name) })
	if missing.IsOk() {
		return errors.New("lookup of 999 should miss")
	}
	p.Failf("lookup(999) failed, so Map never ran")
	p.Stepf("OrElse supplies a stand-in: %q", missing.OrElse("GUEST"))

	relabeled := d.findResult(999).MapErr(func(err error) error {
		return fmt.Errorf("profile page unavailable: %w", err)
	})
	if _, err := relabeled.Get(); err != nil {
		p.Failf("MapErr relabeled the failure: %v", err)
		p.Stepf("errors.Is still reaches the sentinel: %t", errors.Is(err, ErrNotFound))
	}

	_, err = d.findResult(-5).Get()
	if !errors.Is(err, ErrInvalidID) {
		return fmt.Errorf("lookup of -5 should be rejected, got %v", err)
	}
	p.Failf("%v", err)

	p.Blank()
	p.Notef("Type parameters make an expected-style Result expressible: Then")
	p.Notef("and Map short-circuit past failures, MapErr relabels them. Plain")
	p.Notef("two-value returns stay the house style; this shape pays off in")
	p.Notef("pipelines where the checks would drown the logic.")
	return nil
}
