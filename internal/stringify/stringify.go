// Package stringify demonstrates type-dispatch styles for rendering values
// into a compact JSON-like text form. The same cast of values goes through
// a reflective catch-all, a type switch, an encoder interface,
// constraint-dispatched generics and a tag-driven automatic encoder.
package stringify

import (
	"unicode"
	"unicode/utf8"
)

// Person is the demo's custom type. It speaks in two registers: String
// for humans, Encode for the wire.
type Person struct {
	Name string
	Age  int
}

// Team nests one struct inside another.
type Team struct {
	Name string
	Lead Person
}

// The fixed cast every rendition renders.
var (
	samplePerson = Person{Name: "Alice", Age: 30}
	sampleTeam   = Team{Name: "Platform", Lead: Person{Name: "Grace", Age: 41}}
)

// sampleValues returns the cast in presentation order.
func sampleValues() []any {
	return []any{42, 3.14, "hello", samplePerson, []int{1, 2, 3, 4, 5}, sampleTeam}
}

// lowerFirst turns an exported field name into its wire spelling.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
