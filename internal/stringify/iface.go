package stringify

import (
	"context"
	"fmt"
	"strconv"

	"goidioms/internal/ux"
)

// Encoder lets a type own its wire form.
type Encoder interface {
	Encode() string
}

// Encode renders the wire form.
func (p Person) Encode() string {
	return fmt.Sprintf("{name: %s, age: %d}", strconv.Quote(p.Name), p.Age)
}

// String is for humans and log lines, not for the wire.
func (p Person) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Age)
}

// Encode renders the team and delegates the lead to its own encoder.
func (t Team) Encode() string {
	return fmt.Sprintf("{name: %s, lead: %s}", strconv.Quote(t.Name), t.Lead.Encode())
}

// encodeIface asks for an Encoder first, then falls through to the type
// switch for scalars and slices, which cannot carry methods anyway.
func encodeIface(v any) string {
	if enc, ok := v.(Encoder); ok {
		return enc.Encode()
	}
	return encodeSwitch(v)
}

func runIface(ctx context.Context, p *ux.Printer) error {
	p.Stepf("Person speaks in two registers:")
	p.Bulletf("String() for humans: %v", samplePerson)
	p.Bulletf("Encode() for the wire: %s", samplePerson.Encode())

	p.Stepf("the free function asks for an Encoder before anything else:")
	for _, v := range sampleValues() {
		got := encodeIface(v)
		if want := encodeReflect(v); got != want {
			return fmt.Errorf("interface and reflective renditions disagree on %T: %s vs %s", v, got, want)
		}
		p.Bulletf("%-16T -> %s", v, got)
	}
	p.Resultf("structs own their wire form; the free function never learns their fields")

	p.Notef("New types join by implementing Encode, with no central switch to")
	p.Notef("edit. The base cases keep their switch: interfaces move the struct")
	p.Notef("knowledge out, not the scalar knowledge. And fmt shows why the two")
	p.Notef("methods must differ: %%v reaches for String() whenever it exists.")
	return nil
}
