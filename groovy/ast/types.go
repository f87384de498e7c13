package ast

import "strings"

const (
	ObjectTypeName     = "java.lang.Object"
	EnumTypeName       = "java.lang.Enum"
	AnnotationTypeName = "java.lang.annotation.Annotation"
	TraitTypeName      = "groovy.transform.Trait"
	ClosureTypeName    = "groovy.lang.Closure"
)

// TypeRef is a reference to a type by name as written in source. No
// resolution happens at this stage, except that references to classes
// declared in the same unit may point at their Class.
type TypeRef struct {
	Spanned
	Name string

	// Generics is nil when no type arguments were written and empty but
	// non-nil for the diamond form.
	Generics []*GenericType

	// Component is set for array types.
	Component *TypeRef

	// Dynamic marks an untyped declaration.
	Dynamic bool

	Class *Class
}

func NewType(name string) *TypeRef {
	return &TypeRef{Name: name}
}

// DynamicType is the type of an untyped variable, field or return.
func DynamicType() *TypeRef {
	return &TypeRef{Name: ObjectTypeName, Dynamic: true}
}

func ObjectType() *TypeRef {
	return &TypeRef{Name: ObjectTypeName}
}

// ArrayOf returns an array type with t as component.
func ArrayOf(t *TypeRef) *TypeRef {
	return &TypeRef{Name: t.Name + "[]", Component: t, Spanned: t.Spanned}
}

func (t *TypeRef) IsArray() bool {
	return t.Component != nil
}

func (t *TypeRef) IsPrimitive() bool {
	return !t.IsArray() && IsPrimitiveName(t.Name)
}

// UsesGenerics reports whether type arguments were written, including
// the diamond.
func (t *TypeRef) UsesGenerics() bool {
	return t.Generics != nil
}

func (t *TypeRef) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.IsArray() {
		return t.Component.String() + "[]"
	}
	if t.Generics == nil {
		return t.Name
	}
	args := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		args[i] = g.String()
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}

// GenericType is a type parameter declaration or a type argument.
type GenericType struct {
	Spanned
	Type        *TypeRef
	Wildcard    bool
	UpperBounds []*TypeRef
	LowerBound  *TypeRef

	// Placeholder marks a declared type parameter such as T in class A<T>.
	Placeholder bool
}

func (g *GenericType) String() string {
	var sb strings.Builder
	if g.Wildcard {
		sb.WriteString("?")
	} else {
		sb.WriteString(g.Type.String())
	}
	if len(g.UpperBounds) > 0 {
		bounds := make([]string, len(g.UpperBounds))
		for i, b := range g.UpperBounds {
			bounds[i] = b.String()
		}
		sb.WriteString(" extends " + strings.Join(bounds, " & "))
	}
	if g.LowerBound != nil {
		sb.WriteString(" super " + g.LowerBound.String())
	}
	return sb.String()
}

var primitives = map[string]bool{
	"void": true, "boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true,
}

func IsPrimitiveName(name string) bool {
	return primitives[name]
}

// PrimitiveDefault returns the zero value a primitive field starts
// with, or nil for reference types.
func PrimitiveDefault(t *TypeRef) any {
	if t == nil || !t.IsPrimitive() {
		return nil
	}
	switch t.Name {
	case "boolean":
		return false
	case "byte", "short", "int":
		return int32(0)
	case "char":
		return rune(0)
	case "long":
		return int64(0)
	case "float":
		return float32(0)
	case "double":
		return float64(0)
	}
	return nil
}
