package ast

import (
	"fmt"
	"strings"
)

type exprBase struct {
	Spanned
}

func (*exprBase) exprNode() {}

// ConstantExpr is a literal. Value holds nil, bool, string, int32,
// int64, *big.Int, float32, float64 or *big.Rat; Raw keeps the literal
// as written for numbers.
type ConstantExpr struct {
	exprBase
	Value any
	Raw   string
}

func Null() *ConstantExpr { return &ConstantExpr{} }
func Constant(v any) *ConstantExpr { return &ConstantExpr{Value: v} }
func StringConst(s string) *ConstantExpr { return &ConstantExpr{Value: s} }

func (c *ConstantExpr) IsNull() bool { return c.Value == nil }

func (c *ConstantExpr) Text() string {
	if c.Raw != "" {
		return c.Raw
	}
	switch v := c.Value.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// VariableExpr references a local variable, parameter, field or
// property by name. this and super are variables with those names.
type VariableExpr struct {
	exprBase
	Name      string
	Type      *TypeRef
	Modifiers Modifiers
}

func Var(name string) *VariableExpr { return &VariableExpr{Name: name, Type: DynamicType()} }
func This() *VariableExpr { return &VariableExpr{Name: "this", Type: DynamicType()} }
func Super() *VariableExpr { return &VariableExpr{Name: "super", Type: DynamicType()} }

func (v *VariableExpr) IsThis() bool { return v.Name == "this" }
func (v *VariableExpr) IsSuper() bool { return v.Name == "super" }
func (v *VariableExpr) Text() string { return v.Name }

type BinaryExpr struct {
	exprBase
	Left  Expr
	Op    Operator
	Right Expr
}

func (b *BinaryExpr) Text() string {
	return "(" + b.Left.Text() + " " + b.Op.String() + " " + b.Right.Text() + ")"
}

// UnaryExpr applies !, -, + or ~.
type UnaryExpr struct {
	exprBase
	Op      Operator
	Operand Expr
}

func (u *UnaryExpr) Text() string { return u.Op.String() + u.Operand.Text() }

type PrefixExpr struct {
	exprBase
	Op      Operator
	Operand Expr
}

func (p *PrefixExpr) Text() string { return "(" + p.Op.String() + p.Operand.Text() + ")" }

type PostfixExpr struct {
	exprBase
	Op      Operator
	Operand Expr
}

func (p *PostfixExpr) Text() string { return "(" + p.Operand.Text() + p.Op.String() + ")" }

// BooleanExpr marks an expression evaluated for truth, such as a loop
// or if condition.
type BooleanExpr struct {
	exprBase
	Expr Expr
}

func (b *BooleanExpr) Text() string { return b.Expr.Text() }

type TernaryExpr struct {
	exprBase
	Cond *BooleanExpr
	Then Expr
	Else Expr
}

func (t *TernaryExpr) Text() string {
	return "(" + t.Cond.Text() + ") ? " + t.Then.Text() + " : " + t.Else.Text()
}

type ElvisExpr struct {
	exprBase
	Value   Expr
	Default Expr
}

func (e *ElvisExpr) Text() string { return e.Value.Text() + " ?: " + e.Default.Text() }

// PropertyExpr reads a property, or with Attribute set a field
// bypassing accessors.
type PropertyExpr struct {
	exprBase
	Object     Expr
	Property   Expr
	Safe       bool
	SpreadSafe bool
	Attribute  bool
}

func (p *PropertyExpr) Name() string { return p.Property.Text() }

func (p *PropertyExpr) Text() string {
	var sb strings.Builder
	sb.WriteString(p.Object.Text())
	switch {
	case p.SpreadSafe:
		sb.WriteString("*.")
	case p.Safe:
		sb.WriteString("?.")
	default:
		sb.WriteString(".")
	}
	if p.Attribute {
		sb.WriteString("@")
	}
	sb.WriteString(p.Property.Text())
	return sb.String()
}

type MethodCallExpr struct {
	exprBase
	Object       Expr
	Method       Expr
	Args         *ArgumentListExpr
	Safe         bool
	SpreadSafe   bool
	ImplicitThis bool
	Generics     []*GenericType
}

// MethodName returns the method name when it is a constant.
func (m *MethodCallExpr) MethodName() string {
	if c, ok := m.Method.(*ConstantExpr); ok {
		if s, ok := c.Value.(string); ok {
			return s
		}
	}
	return ""
}

func (m *MethodCallExpr) Text() string {
	var sb strings.Builder
	if !m.ImplicitThis {
		sb.WriteString(m.Object.Text())
		switch {
		case m.SpreadSafe:
			sb.WriteString("*.")
		case m.Safe:
			sb.WriteString("?.")
		default:
			sb.WriteString(".")
		}
	}
	sb.WriteString(m.Method.Text())
	sb.WriteString(m.Args.Text())
	return sb.String()
}

type ConstructorCallKind int

const (
	NewCall ConstructorCallKind = iota
	ThisCall
	SuperCall
)

// ConstructorCallExpr is new T(...), or an explicit this(...) or
// super(...) call. Anonymous is set for new T(...) { body }.
type ConstructorCallExpr struct {
	exprBase
	Type      *TypeRef
	Args      *ArgumentListExpr
	Call      ConstructorCallKind
	Anonymous *Class
}

func (c *ConstructorCallExpr) Text() string {
	switch c.Call {
	case ThisCall:
		return "this" + c.Args.Text()
	case SuperCall:
		return "super" + c.Args.Text()
	}
	return "new " + c.Type.String() + c.Args.Text()
}

type IndexExpr struct {
	exprBase
	Object Expr
	Index  Expr
	Safe   bool
}

func (i *IndexExpr) Text() string { return i.Object.Text() + "[" + i.Index.Text() + "]" }

// CastExpr is a Java style cast, or a Groovy coercion when Coerce is set.
type CastExpr struct {
	exprBase
	Type   *TypeRef
	Expr   Expr
	Coerce bool
}

func (c *CastExpr) Text() string {
	if c.Coerce {
		return "(" + c.Expr.Text() + " as " + c.Type.String() + ")"
	}
	return "(" + c.Type.String() + ") " + c.Expr.Text()
}

type InstanceOfExpr struct {
	exprBase
	Expr Expr
	Type *TypeRef
}

func (i *InstanceOfExpr) Text() string {
	return "(" + i.Expr.Text() + " instanceof " + i.Type.String() + ")"
}

// ListExpr is a list literal. Wrapped marks a list made from a
// parenthesized expression list rather than written with brackets.
type ListExpr struct {
	exprBase
	Elements []Expr
	Wrapped  bool
}

func (l *ListExpr) Text() string { return "[" + joinText(l.Elements, ", ") + "]" }

type MapExpr struct {
	exprBase
	Entries []Expr
}

func (m *MapExpr) Text() string {
	if len(m.Entries) == 0 {
		return "[:]"
	}
	return "[" + joinText(m.Entries, ", ") + "]"
}

type MapEntryExpr struct {
	exprBase
	Key   Expr
	Value Expr
}

func (e *MapEntryExpr) Text() string { return e.Key.Text() + ":" + e.Value.Text() }

type RangeExpr struct {
	exprBase
	From      Expr
	To        Expr
	Inclusive bool
}

func (r *RangeExpr) Text() string {
	op := "..<"
	if r.Inclusive {
		op = ".."
	}
	return "(" + r.From.Text() + op + r.To.Text() + ")"
}

type SpreadExpr struct {
	exprBase
	Expr Expr
}

func (s *SpreadExpr) Text() string { return "*" + s.Expr.Text() }

type SpreadMapExpr struct {
	exprBase
	Expr Expr
}

func (s *SpreadMapExpr) Text() string { return "*:" + s.Expr.Text() }

// GStringExpr is an interpolated string. Strings and Values alternate,
// starting and ending with a string.
type GStringExpr struct {
	exprBase
	Verbatim string
	Strings  []*ConstantExpr
	Values   []Expr
}

func (g *GStringExpr) Text() string { return g.Verbatim }

type ClosureExpr struct {
	exprBase
	Parameters []*Parameter

	// ImplicitParams is set when no parameter list was written, so the
	// closure takes the implicit it.
	ImplicitParams bool
	Code           Stmt
}

func (c *ClosureExpr) Text() string {
	if c.ImplicitParams {
		return "{ -> ... }"
	}
	names := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		names[i] = p.Name
	}
	return "{ " + strings.Join(names, ", ") + " -> ... }"
}

type MethodPointerExpr struct {
	exprBase
	Object Expr
	Method Expr
}

func (m *MethodPointerExpr) Text() string { return m.Object.Text() + ".&" + m.Method.Text() }

type TupleExpr struct {
	exprBase
	Elements []Expr
}

func (t *TupleExpr) Text() string { return "(" + joinText(t.Elements, ", ") + ")" }

// ArgumentListExpr holds call arguments. Named arguments are collected
// into one MapExpr placed after the positional ones; NamedOnly is set
// when there were no positional arguments.
type ArgumentListExpr struct {
	exprBase
	Args      []Expr
	NamedOnly bool
}

func (a *ArgumentListExpr) Text() string { return "(" + joinText(a.Args, ", ") + ")" }

// DeclarationExpr declares a variable, or several at once when Left is
// a TupleExpr of variables.
type DeclarationExpr struct {
	exprBase
	Left        Expr
	Right       Expr
	Modifiers   Modifiers
	Annotations []*Annotation
}

func (d *DeclarationExpr) IsMultiple() bool {
	_, ok := d.Left.(*TupleExpr)
	return ok
}

// Variables returns the declared variables.
func (d *DeclarationExpr) Variables() []*VariableExpr {
	switch left := d.Left.(type) {
	case *VariableExpr:
		return []*VariableExpr{left}
	case *TupleExpr:
		vars := make([]*VariableExpr, 0, len(left.Elements))
		for _, e := range left.Elements {
			if v, ok := e.(*VariableExpr); ok {
				vars = append(vars, v)
			}
		}
		return vars
	}
	return nil
}

func (d *DeclarationExpr) Text() string {
	return "(" + d.Left.Text() + " = " + d.Right.Text() + ")"
}

// ClosureListExpr is the (init; cond; update) header of a classic for.
type ClosureListExpr struct {
	exprBase
	Exprs []Expr
}

func (c *ClosureListExpr) Text() string { return "(" + joinText(c.Exprs, "; ") + ")" }

// ArrayExpr is new T[n][m]. Sizes has one entry per dimension; a nil
// entry is a dimension without size.
type ArrayExpr struct {
	exprBase
	ElementType *TypeRef
	Sizes       []Expr
}

func (a *ArrayExpr) Text() string {
	var sb strings.Builder
	sb.WriteString("new " + a.ElementType.String())
	for _, s := range a.Sizes {
		sb.WriteString("[")
		if s != nil {
			sb.WriteString(s.Text())
		}
		sb.WriteString("]")
	}
	return sb.String()
}

type ClassExpr struct {
	exprBase
	Type *TypeRef
}

func (c *ClassExpr) Text() string { return c.Type.String() }

type AnnotationConstantExpr struct {
	exprBase
	Annotation *Annotation
}

func (a *AnnotationConstantExpr) Text() string { return "@" + a.Annotation.Type.String() }

type EmptyExpr struct {
	exprBase
}

func (*EmptyExpr) Text() string { return "" }

func joinText(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.Text()
	}
	return strings.Join(parts, sep)
}
