package stringify

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goidioms/internal/ux"
)

// Every dispatch strategy must produce the same wire text.
func TestEncodeAgreesAcrossEras(t *testing.T) {
	encoders := map[string]func(any) string{
		"reflect":    encodeReflect,
		"typeswitch": encodeSwitch,
		"iface":      encodeIface,
		"tags":       encodeTagged,
	}
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"float", 3.14, "3.14"},
		{"string", "hello", `"hello"`},
		{"person", samplePerson, `{name: "Alice", age: 30}`},
		{"ints", []int{1, 2, 3, 4, 5}, "[1, 2, 3, 4, 5]"},
		{"nested team", sampleTeam, `{name: "Platform", lead: {name: "Grace", age: 41}}`},
		{"nil", nil, "null"},
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			for _, tc := range cases {
				assert.Equal(t, tc.want, encode(tc.value), tc.name)
			}
		})
	}
}

func TestReflectFallbacks(t *testing.T) {
	assert.Equal(t, `{name: "Alice", age: 30}`, encodeReflect(&samplePerson), "pointers dereference")
	assert.Equal(t, "null", encodeReflect((*Person)(nil)))
	assert.Equal(t, "255", encodeReflect(uint8(255)))
	// The catch-all case is fmt's notation, not wire format.
	assert.Equal(t, "map[a:1]", encodeReflect(map[string]int{"a": 1}))
}

func TestSwitchDefaultSwallowsStrangers(t *testing.T) {
	assert.Equal(t, "{3 4}", encodeSwitch(coordinate{X: 3, Y: 4}))
	assert.Equal(t, `["a", "b"]`, encodeSwitch([]string{"a", "b"}))
}

// loudValue implements Encoder and nothing else.
type loudValue struct{}

func (loudValue) Encode() string { return "LOUD" }

func TestIfacePrefersTheEncoder(t *testing.T) {
	assert.Equal(t, "LOUD", encodeIface(loudValue{}))
	assert.Equal(t, "{}", encodeSwitch(loudValue{}), "the switch has no case for it")
}

// String and Encode must stay distinct registers.
func TestStringerVersusEncoder(t *testing.T) {
	assert.Equal(t, "Alice (30)", fmt.Sprintf("%v", samplePerson))
	assert.Equal(t, `{name: "Alice", age: 30}`, samplePerson.Encode())
}

func TestGenericEncoders(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		assert.Equal(t, "42", EncodeNumber(42))
		assert.Equal(t, "3.14", EncodeNumber(3.14))
		assert.Equal(t, "7", EncodeNumber(int64(7)))
		assert.Equal(t, "7", EncodeNumber(UserID(7)), "~int admits named types")
	})

	t.Run("text", func(t *testing.T) {
		type slug string
		assert.Equal(t, `"hello"`, EncodeText("hello"))
		assert.Equal(t, `"go"`, EncodeText(slug("go")))
	})

	t.Run("slices", func(t *testing.T) {
		assert.Equal(t, "[1, 2, 3, 4, 5]", EncodeSlice([]int{1, 2, 3, 4, 5}, EncodeNumber[int]))
		assert.Equal(t, "[]", EncodeSlice(nil, EncodeNumber[int]))
		nested := EncodeSlice([][]int{{1, 2}, {3}}, func(s []int) string {
			return EncodeSlice(s, EncodeNumber[int])
		})
		assert.Equal(t, "[[1, 2], [3]]", nested)
	})
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1, factorial(0))
	assert.Equal(t, 1, factorial(1))
	assert.Equal(t, 120, factorial(5))
	assert.Equal(t, 120, factorialOfFive)
}

func TestQueryBuilderChains(t *testing.T) {
	got := new(QueryBuilder).Select("*").From("users").Where("age > 18").Build()
	assert.Equal(t, "SELECT * FROM users WHERE age > 18", got)
}

func TestTaggedGrammar(t *testing.T) {
	profile := Profile{Name: "Dana", Age: 29, Token: "hunter2", scratch: "local"}
	assert.Equal(t, `{name: "Dana", age: 29}`, encodeTagged(profile))

	profile.Email = "dana@example.com"
	assert.Equal(t, `{name: "Dana", age: 29, email: "dana@example.com"}`, encodeTagged(profile))

	anon := struct {
		Kept    string `serial:"kept"`
		Omitted int    `serial:"n,omit"`
		Barred  string `serial:"-"`
	}{Kept: "yes", Barred: "secret"}
	assert.Equal(t, `{kept: "yes"}`, encodeTagged(anon))
}

func TestVariantsRun(t *testing.T) {
	anchors := map[string][]string{
		"reflect": {
			`-> {name: "Alice", age: 30}`,
			"struct fields surface without a line of per-type code",
			"(*Person)(nil) -> null",
			"fmt's notation, not wire format",
		},
		"typeswitch": {
			"byte for byte what the reflective walker produced",
			"coordinate{3, 4} fell to the default: {3 4}",
		},
		"iface": {
			"String() for humans: Alice (30)",
			`Encode() for the wire: {name: "Alice", age: 30}`,
			"structs own their wire form",
		},
		"generic": {
			"EncodeNumber(42) = 42",
			"the tilde admits named types",
			"EncodeSlice over ints: [1, 2, 3, 4, 5]",
			"and it nests: [[1, 2], [3]]",
			"5! = 120",
			"fluent chain: SELECT * FROM users WHERE age > 18",
		},
		"tags": {
			`{name: "Dana", age: 29}`,
			`with the email set: {name: "Dana", age: 29, email: "dana@example.com"}`,
			`Token carries serial:"-"`,
			"lowercased field names",
		},
	}

	for _, v := range Demo().Variants {
		t.Run(v.ID, func(t *testing.T) {
			var buf bytes.Buffer
			err := v.Run(context.Background(), ux.NewPlainPrinter(&buf))
			require.NoError(t, err)
			for _, anchor := range anchors[v.ID] {
				assert.Contains(t, buf.String(), anchor)
			}
		})
	}
}

func TestDemoShape(t *testing.T) {
	d := Demo()
	assert.Equal(t, "serialization", d.Name)
	assert.Equal(t, []string{"reflect", "typeswitch", "iface", "generic", "tags"}, d.VariantIDs())
}
