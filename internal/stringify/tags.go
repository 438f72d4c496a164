package stringify

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"goidioms/internal/ux"
)

// Profile exercises the tag grammar: renamed fields, an omit option, a
// field barred from the wire and one reflection cannot reach.
type Profile struct {
	Name    string `serial:"name"`
	Age     int    `serial:"age"`
	Email   string `serial:"email,omit"`
	Token   string `serial:"-"`
	scratch string
}

// encodeTagged renders any struct from its `serial` tags. The tag names
// the wire field, "-" bars it, and ",omit" drops zero values. Untagged
// exported fields fall back to their lowercased name.
func encodeTagged(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return encodeTagged(rv.Elem().Interface())
	case rv.Kind() == reflect.String:
		return strconv.Quote(rv.String())
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case rv.Kind() == reflect.Slice, rv.Kind() == reflect.Array:
		var parts []string
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, encodeTagged(rv.Index(i).Interface()))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case rv.Kind() == reflect.Struct:
		t := rv.Type()
		var parts []string
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, opts, _ := strings.Cut(f.Tag.Get("serial"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = lowerFirst(f.Name)
			}
			if opts == "omit" && rv.Field(i).IsZero() {
				continue
			}
			parts = append(parts, name+": "+encodeTagged(rv.Field(i).Interface()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func runTagged(ctx context.Context, p *ux.Printer) error {
	p.Stepf("the struct describes itself; tags name the wire fields:")
	profile := Profile{Name: "Dana", Age: 29, Token: "hunter2", scratch: "local"}
	p.Resultf("%s", encodeTagged(profile))
	p.Bulletf(`Token carries serial:"-" and never reaches the wire`)
	p.Bulletf("scratch is unexported, so it is skipped outright")
	p.Bulletf("Email is zero and tagged omit, so it vanished")

	profile.Email = "dana@example.com"
	p.Resultf("with the email set: %s", encodeTagged(profile))

	p.Stepf("untagged structs fall back to lowercased field names:")
	for _, v := range []any{samplePerson, sampleTeam} {
		got := encodeTagged(v)
		if want := encodeReflect(v); got != want {
			return fmt.Errorf("tagged and reflective renditions disagree on %T: %s vs %s", v, got, want)
		}
		p.Bulletf("%-16T -> %s", v, got)
	}

	p.Notef("The tag is data the compiler carries for the program to read back.")
	p.Notef("encoding/json has run on this exact design since the beginning:")
	p.Notef("declarative field metadata plus reflection, no generated code. The")
	p.Notef("cost stays where reflection put it, at run time.")
	return nil
}
