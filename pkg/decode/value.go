// Package decode normalizes a raw OpenAPI document (YAML or JSON) into a
// canonical value form and hands it to the spec decoder.
package decode

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the canonical tagged-union representation of a parsed document:
// null, boolean, number, string, ordered array, or string-keyed object.
// Objects keep unique keys with last write winning on duplicates; key order
// is not significant. A Value is built by a single top-down parse, so it is
// finite and acyclic.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    string
	Array  []Value
	Object map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{Kind: KindNull} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// ArrayValue wraps an ordered sequence of values.
func ArrayValue(items ...Value) Value { return Value{Kind: KindArray, Array: items} }

// ObjectValue wraps a string-keyed association.
func ObjectValue(fields map[string]Value) Value { return Value{Kind: KindObject, Object: fields} }

// MarshalJSON renders the Value in its canonical JSON encoding. Object keys
// are emitted in sorted order so equivalent documents marshal identically.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindString:
		return json.Marshal(v.Str)
	case KindArray:
		if v.Array == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Array)
	case KindObject:
		var b strings.Builder
		b.WriteByte('{')
		keys := make([]string, 0, len(v.Object))
		for k := range v.Object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := json.Marshal(v.Object[k])
			if err != nil {
				return nil, err
			}
			b.Write(kb)
			b.WriteByte(':')
			b.Write(vb)
		}
		b.WriteByte('}')
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("decode: unknown value kind %d", v.Kind)
	}
}
