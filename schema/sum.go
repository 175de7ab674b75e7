package schema

import (
	"fmt"
	"reflect"
	"sync"
)

// Variant is implemented by every concrete type that can appear as a
// variant of a registered Sum interface. VariantName returns the variant's
// identifier before canonicalization (RegisterVariant canonicalizes it).
//
// No example in the retrieved pack implements a domain-specific sum-type
// registry, so this follows the standard library's own idiom for the same
// problem: encoding/gob.Register maintains a global name->reflect.Type map
// populated by explicit Register calls (typically from an init function),
// because gob must reconstruct a concrete type from a wire-carried name
// without a code generator. RegisterVariant below is that same shape,
// specialized to the sum-type-with-named-variants case.
type Variant interface {
	VariantName() string
}

var sumRegistryMu sync.RWMutex

// sumRegistry maps the Sum interface's reflect.Type to its known variants,
// keyed by canonicalized identifier.
var sumRegistry = map[reflect.Type]map[string]reflect.Type{}

// RegisterVariant registers concrete type V as a variant of sum interface
// I, identified on the wire by its canonicalized VariantName(). Call this
// from an init function for every concrete variant before encoding or
// decoding any value containing I.
//
// Panics if two distinct concrete types register the same canonicalized
// name under the same interface, since that would make the variant
// ambiguous at decode time.
func RegisterVariant[I any](v Variant) {
	ifaceType := reflect.TypeOf((*I)(nil)).Elem()

	concrete := reflect.TypeOf(v)
	if concrete.Kind() == reflect.Pointer {
		concrete = concrete.Elem()
	}

	name := CanonicalizeIdent(v.VariantName())

	sumRegistryMu.Lock()
	defer sumRegistryMu.Unlock()

	variants, ok := sumRegistry[ifaceType]
	if !ok {
		variants = map[string]reflect.Type{}
		sumRegistry[ifaceType] = variants
	}

	if existing, ok := variants[name]; ok && existing != concrete {
		panic(fmt.Sprintf("schema: variant name %q of %s already registered to %s, cannot register %s",
			name, ifaceType, existing, concrete))
	}

	variants[name] = concrete
}

// LookupVariant resolves a canonicalized variant identifier, previously
// registered under sum interface ifaceType, to its concrete reflect.Type.
func LookupVariant(ifaceType reflect.Type, name string) (reflect.Type, bool) {
	sumRegistryMu.RLock()
	defer sumRegistryMu.RUnlock()

	variants, ok := sumRegistry[ifaceType]
	if !ok {
		return nil, false
	}

	t, ok := variants[name]

	return t, ok
}

// VariantsOf returns every variant registered under sum interface
// ifaceType, in no particular order. The encoder and decoder do not call
// it: the wire format discovers variants per occurrence (see spec's Enum
// column rule), not from a fixed schema list.
func VariantsOf(ifaceType reflect.Type) map[string]reflect.Type {
	sumRegistryMu.RLock()
	defer sumRegistryMu.RUnlock()

	out := make(map[string]reflect.Type, len(sumRegistry[ifaceType]))
	for k, v := range sumRegistry[ifaceType] {
		out[k] = v
	}

	return out
}
