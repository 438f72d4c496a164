package lookup

import (
	"context"
	"errors"
	"fmt"

	"goidioms/internal/ux"
)

// NotFoundError carries the id that missed, so callers can react to the
// specific lookup instead of parsing a message.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %d not found", e.ID)
}

// Unwrap ties the typed error back to the old sentinel, so code written
// against ErrNotFound keeps working.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// findWrapped annotates each failure with the id and keeps the cause
// reachable through the %w chain.
func (d *Directory) findWrapped(id int) (User, error) {
	if id <= 0 {
		return User{}, fmt.Errorf("lookup user %d: %w", id, ErrInvalidID)
	}
	u, ok := d.users[id]
	if !ok {
		return User{}, fmt.Errorf("lookup user %d: %w", id, &NotFoundError{ID: id})
	}
	return u, nil
}

// emailFor stacks a second hop on the lookup. Each hop wraps, so a failed
// chain reads like a call stack.
func (d *Directory) emailFor(id int) (string, error) {
	u, err := d.findWrapped(id)
	if err != nil {
		return "", fmt.Errorf("fetch email for user %d: %w", id, err)
	}
	return u.Email, nil
}

func runWrapped(ctx context.Context, p *ux.Printer) error {
	d := NewDirectory()

	u, err := d.findWrapped(1)
	if err != nil {
		return fmt.Errorf("seed user 1 should exist: %w", err)
	}
	p.Resultf("found %s", u)

	addr, err := d.emailFor(2)
	if err != nil {
		return fmt.Errorf("seed user 2 should have an email: %w", err)
	}
	p.Resultf("chained fetch: email for user 2 is %s", addr)

	_, err = d.emailFor(999)
	if err == nil {
		return errors.New("lookup of 999 should miss")
	}
	p.Failf("%v", err)
	p.Stepf("errors.Is(err, ErrNotFound) = %t from the far end of the chain", errors.Is(err, ErrNotFound))

	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		return fmt.Errorf("expected a NotFoundError in the chain, got %v", err)
	}
	p.Stepf("errors.As recovers the typed error: missing id %d", nfe.ID)

	_, err = d.findWrapped(-5)
	if !errors.Is(err, ErrInvalidID) {
		return fmt.Errorf("lookup of -5 should be rejected, got %v", err)
	}
	p.Failf("%v", err)

	p.Blank()
	p.Notef("Each layer adds context without hiding the cause: == gives way")
	p.Notef("to errors.Is, and errors.As pulls typed detail out of the chain.")
	return nil
}
