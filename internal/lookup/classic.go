package lookup

import (
	"context"
	"errors"
	"fmt"

	"goidioms/internal/ux"
)

// The package-level sentinels date from the oldest rendition and every
// later one still honors them.
var (
	ErrNotFound  = errors.New("user not found")
	ErrInvalidID = errors.New("invalid user id")
)

// findClassic is the original idiom: comma-ok on the map, a sentinel error
// per failure mode, and the zero User standing in on misses.
func (d *Directory) findClassic(id int) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidID
	}
	u, ok := d.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// findPointer is the other early convention: nil means absent. Bad input
// and a genuine miss collapse into the same nil.
func (d *Directory) findPointer(id int) *User {
	if id <= 0 {
		return nil
	}
	if u, ok := d.users[id]; ok {
		return &u
	}
	return nil
}

func runClassic(ctx context.Context, p *ux.Printer) error {
	d := NewDirectory()

	for _, id := range []int{1, 2, 3} {
		u, err := d.findClassic(id)
		if err != nil {
			return fmt.Errorf("seed user %d should exist: %w", id, err)
		}
		p.Resultf("found %s", u)
	}

	_, err := d.findClassic(999)
	if err != ErrNotFound {
		return fmt.Errorf("lookup of 999 should miss, got %v", err)
	}
	p.Failf("user 999: %v", err)

	_, err = d.findClassic(-5)
	if err != ErrInvalidID {
		return fmt.Errorf("lookup of -5 should be rejected, got %v", err)
	}
	p.Failf("user -5: %v", err)

	if u := d.findPointer(2); u != nil {
		p.Stepf("the pointer convention finds %s too", u)
	}
	if d.findPointer(999) != nil || d.findPointer(-5) != nil {
		return errors.New("findPointer should return nil for 999 and -5")
	}
	p.Failf("findPointer(999) and findPointer(-5) are the same bare nil")

	p.Blank()
	p.Notef("Sentinels compare with == and misses are ordinary values.")
	p.Notef("The cost: the error says nothing about which id was asked for,")
	p.Notef("a nil pointer cannot say why, and callers that forget the check")
	p.Notef("get a zero User silently.")
	return nil
}
