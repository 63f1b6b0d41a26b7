// Package ast defines the node shapes of the already-parsed abstract syntax
// tree this compiler's semantic analyzer and code generator operate on.
package ast

import (
	"strconv"
	"strings"
)

// BasicKind is the tagged kind of a Type.
type BasicKind int

const (
	Bool BasicKind = iota
	Char
	Int
	Float
	Double
	String
	Void
	Error
)

func (k BasicKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return "error"
	}
}

// Type is a tagged kind together with an ordered list of positive array
// dimensions. An empty Dims slice denotes a scalar.
type Type struct {
	Kind BasicKind
	Dims []int
}

// Scalar builds a scalar Type of the given kind.
func Scalar(k BasicKind) Type { return Type{Kind: k} }

// ErrorType is the sentinel used to suppress cascading diagnostics.
var ErrorType = Type{Kind: Error}

// IsScalar reports whether t has no array dimensions.
func (t Type) IsScalar() bool { return len(t.Dims) == 0 }

// IsError reports whether t is the Error sentinel.
func (t Type) IsError() bool { return t.Kind == Error }

// Equals reports structural equality: same kind and same dimension list.
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind || len(t.Dims) != len(o.Dims) {
		return false
	}
	for i := range t.Dims {
		if t.Dims[i] != o.Dims[i] {
			return false
		}
	}
	return true
}

func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.Kind.String())
	for _, d := range t.Dims {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(']')
	}
	return sb.String()
}
