package stringify

import (
	"goidioms/internal/demo"
	"goidioms/internal/goversion"
)

// Demo returns the type-dispatch demo.
func Demo() demo.Demo {
	return demo.Demo{
		Name:    "serialization",
		Title:   "Serialization: one wire form, five dispatch strategies",
		Summary: "Rendering mixed values to JSON-ish text, from reflection to tags.",
		Variants: []demo.Variant{
			{
				ID:    "reflect",
				Title: "a reflective catch-all over reflect.Kind",
				Since: goversion.V(1, 0),
				Run:   runReflect,
			},
			{
				ID:    "typeswitch",
				Title: "a type switch over the supported set",
				Since: goversion.V(1, 0),
				Run:   runSwitch,
			},
			{
				ID:    "iface",
				Title: "an Encoder interface, with fmt.Stringer alongside",
				Since: goversion.V(1, 0),
				Run:   runIface,
			},
			{
				ID:    "generic",
				Title: "constraint-dispatched encoders and a fluent builder",
				Since: goversion.V(1, 18),
				Run:   runGeneric,
			},
			{
				ID:    "tags",
				Title: "struct tags drive an automatic encoder",
				Since: goversion.V(1, 18),
				Run:   runTagged,
			},
		},
	}
}
