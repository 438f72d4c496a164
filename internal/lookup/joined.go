package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goidioms/internal/ux"
)

// Record validation failures, one per field.
var (
	ErrEmptyName = errors.New("name is empty")
	ErrBadEmail  = errors.New("email has no @")
)

// validate reports every problem with a proposed record at once instead of
// stopping at the first.
func validate(u User) error {
	var errs []error
	if u.ID <= 0 {
		errs = append(errs, ErrInvalidID)
	}
	if u.Name == "" {
		errs = append(errs, ErrEmptyName)
	}
	if !strings.Contains(u.Email, "@") {
		errs = append(errs, ErrBadEmail)
	}
	return errors.Join(errs...)
}

// findBatch resolves several ids, returning the hits plus every miss
// joined into one error.
func (d *Directory) findBatch(ids ...int) ([]User, error) {
	var users []User
	var errs []error
	for _, id := range ids {
		u, err := d.findWrapped(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		users = append(users, u)
	}
	return users, errors.Join(errs...)
}

func runJoined(ctx context.Context, p *ux.Printer) error {
	d := NewDirectory()

	users, err := d.findBatch(1, 999, 2, -5, 3)
	if err == nil {
		return errors.New("batch with 999 and -5 should report failures")
	}
	p.Resultf("batch resolved %d of 5 ids", len(users))
	for _, u := range users {
		p.Bulletf("%s", u)
	}

	p.Failf("and reported both misses in one error:")
	for _, line := range strings.Split(err.Error(), "\n") {
		p.Bulletf("%s", line)
	}
	p.Stepf("errors.Is still finds ErrInvalidID in the tree: %t", errors.Is(err, ErrInvalidID))
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		return fmt.Errorf("expected a NotFoundError in the tree, got %v", err)
	}
	p.Stepf("errors.As still finds the typed miss: id %d", nfe.ID)

	bad := User{ID: -1, Name: "", Email: "no-at-sign"}
	verr := validate(bad)
	if verr == nil {
		return errors.New("validation of a broken record should fail")
	}
	p.Failf("validate collected every field problem:")
	for _, line := range strings.Split(verr.Error(), "\n") {
		p.Bulletf("%s", line)
	}

	p.Stepf("the same missing id, one dialect per era:")
	if _, err := d.findClassic(999); err == ErrNotFound {
		p.Bulletf("classic: err == ErrNotFound")
	}
	if _, err := d.findWrapped(999); errors.Is(err, ErrNotFound) {
		p.Bulletf("wrapped: errors.Is(err, ErrNotFound) through the chain")
	}
	if !d.findResult(999).IsOk() {
		p.Bulletf("result: IsOk() == false, the error rides inside the value")
	}
	if _, err := d.findBatch(999); errors.Is(err, ErrNotFound) {
		p.Bulletf("joined: the miss still matches inside the join")
	}

	p.Blank()
	p.Notef("Join turns a slice of failures into one error while Is and As")
	p.Notef("keep seeing through it. Batch jobs stop choosing between the")
	p.Notef("first failure and a hand-rolled multi-error type.")
	return nil
}
