// Package schema defines the type descriptors attached to argument
// specifications and their canonical (normalized) form. A descriptor is
// classified exactly once per argument; the classification decides how the
// binding engine decodes option values.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the canonical name of a descriptor type.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindArray  Kind = "array"
	KindMap    Kind = "map"
	KindAny    Kind = "any"
)

// Class partitions descriptors by decoding strategy.
type Class int

const (
	// Scalar values are stored as supplied (booleans excepted) without
	// structured decoding.
	Scalar Class = iota
	// ListOfScalar values accumulate raw occurrences into an ordered list.
	ListOfScalar
	// Complex values are decoded from their serialized-text form.
	Complex
)

func (c Class) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case ListOfScalar:
		return "list-of-scalar"
	default:
		return "complex"
	}
}

// TypeDescriptor describes the declared type of one argument. Elem is only
// meaningful for array descriptors.
type TypeDescriptor struct {
	Kind Kind
	Elem *TypeDescriptor
}

var ErrInvalidDescriptor = errors.New("invalid type descriptor")

// kind synonyms accepted in shorthand form
var synonyms = map[string]Kind{
	"str":     KindString,
	"string":  KindString,
	"text":    KindString,
	"num":     KindNumber,
	"number":  KindNumber,
	"int":     KindInt,
	"integer": KindInt,
	"float":   KindFloat,
	"double":  KindFloat,
	"bool":    KindBool,
	"boolean": KindBool,
	"flag":    KindBool,
	"array":   KindArray,
	"list":    KindArray,
	"map":     KindMap,
	"hash":    KindMap,
	"dict":    KindMap,
	"any":     KindAny,
	"":        KindAny,
}

// Normalize converts a raw descriptor to canonical form. Accepted inputs are
// a *TypeDescriptor (returned as a normalized copy), a Kind, or a string
// shorthand such as "int", "[]str" or "array[int]". The result is always a
// fresh value - callers may mutate it without affecting the input.
func Normalize(raw any) (*TypeDescriptor, error) {
	switch t := raw.(type) {
	case nil:
		return &TypeDescriptor{Kind: KindAny}, nil
	case *TypeDescriptor:
		if t == nil {
			return &TypeDescriptor{Kind: KindAny}, nil
		}
		kind, ok := synonyms[string(t.Kind)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind '%s'", ErrInvalidDescriptor, t.Kind)
		}
		norm := &TypeDescriptor{Kind: kind}
		if kind == KindArray {
			elem, err := Normalize(t.Elem)
			if err != nil {
				return nil, err
			}
			norm.Elem = elem
		}
		return norm, nil
	case TypeDescriptor:
		return Normalize(&t)
	case Kind:
		return parseShorthand(string(t))
	case string:
		return parseShorthand(t)
	default:
		return nil, fmt.Errorf("%w: unsupported descriptor %T", ErrInvalidDescriptor, raw)
	}
}

func parseShorthand(s string) (*TypeDescriptor, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if elem, ok := strings.CutPrefix(s, "[]"); ok {
		inner, err := parseShorthand(elem)
		if err != nil {
			return nil, err
		}
		return &TypeDescriptor{Kind: KindArray, Elem: inner}, nil
	}

	if rest, ok := strings.CutPrefix(s, "array["); ok {
		elem, ok := strings.CutSuffix(rest, "]")
		if !ok {
			return nil, fmt.Errorf("%w: unterminated element type in '%s'", ErrInvalidDescriptor, s)
		}
		inner, err := parseShorthand(elem)
		if err != nil {
			return nil, err
		}
		return &TypeDescriptor{Kind: KindArray, Elem: inner}, nil
	}

	kind, ok := synonyms[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind '%s'", ErrInvalidDescriptor, s)
	}
	td := &TypeDescriptor{Kind: kind}
	if kind == KindArray {
		td.Elem = &TypeDescriptor{Kind: KindAny}
	}
	return td, nil
}

// IsScalarKind reports whether k belongs to the closed scalar set.
func IsScalarKind(k Kind) bool {
	switch k {
	case KindString, KindNumber, KindInt, KindFloat, KindBool:
		return true
	}
	return false
}

// Classify maps a normalized descriptor to its decoding class. Descriptors
// must have been normalized first - an unnormalized kind classifies as
// Complex.
func Classify(td *TypeDescriptor) Class {
	if td == nil {
		return Complex
	}
	if IsScalarKind(td.Kind) {
		return Scalar
	}
	if td.Kind == KindArray && td.Elem != nil && IsScalarKind(td.Elem.Kind) {
		return ListOfScalar
	}
	return Complex
}

// IsBool reports whether the descriptor declares a boolean scalar.
func (td *TypeDescriptor) IsBool() bool {
	return td != nil && td.Kind == KindBool
}

func (td *TypeDescriptor) String() string {
	if td == nil {
		return string(KindAny)
	}
	if td.Kind == KindArray {
		return fmt.Sprintf("array[%s]", td.Elem.String())
	}
	return string(td.Kind)
}
