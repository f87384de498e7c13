package ast

import "strings"

// Module is the result of converting one compilation unit. Top-level
// statements form the script body and top-level methods belong to the
// script.
type Module struct {
	Spanned
	Package    *Package
	Imports    []*Import
	Statements *BlockStmt
	Methods    []*Method
	Classes    []*Class

	// ScriptClass stands in for the script when naming anonymous classes
	// declared at the top level. It is not listed in Classes.
	ScriptClass *Class
}

func NewModule(scriptName string) *Module {
	return &Module{
		Statements:  &BlockStmt{},
		ScriptClass: &Class{Name: scriptName, Kind: ClassKindClass, Modifiers: ModPublic, Script: true},
	}
}

// PackageName returns the package with a trailing dot, or "".
func (m *Module) PackageName() string {
	if m.Package == nil {
		return ""
	}
	return m.Package.Name + "."
}

func (m *Module) AddClass(c *Class) {
	m.Classes = append(m.Classes, c)
}

func (m *Module) AddMethod(method *Method) {
	m.Methods = append(m.Methods, method)
}

func (m *Module) AddStatement(s Stmt) {
	m.Statements.Statements = append(m.Statements.Statements, s)
}

func (m *Module) AddImport(imp *Import) {
	m.Imports = append(m.Imports, imp)
}

// Class returns the class with the given binary name.
func (m *Module) Class(name string) *Class {
	for _, c := range m.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (m *Module) IsEmpty() bool {
	return len(m.Classes) == 0 && len(m.Methods) == 0 && len(m.Statements.Statements) == 0
}

type Package struct {
	Spanned
	Name        string
	Annotations []*Annotation
}

type ImportKind int

const (
	ImportSingle ImportKind = iota
	ImportStar
	ImportStatic
	ImportStaticStar
)

func (k ImportKind) String() string {
	switch k {
	case ImportStar:
		return "star"
	case ImportStatic:
		return "static"
	case ImportStaticStar:
		return "static star"
	}
	return "single"
}

// Import records one import declaration. Type is the imported class for
// single and static imports; PackageName is set for star imports and
// ends with a dot; Member names the static member.
type Import struct {
	Spanned
	Kind        ImportKind
	Type        *TypeRef
	PackageName string
	Member      string
	Alias       string
	Annotations []*Annotation
}

type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindEnum
	ClassKindAnnotation
)

func (k ClassKind) String() string {
	switch k {
	case ClassKindInterface:
		return "interface"
	case ClassKindEnum:
		return "enum"
	case ClassKindAnnotation:
		return "annotation"
	}
	return "class"
}

// Class is a type declaration. Name is the binary name, using $ between
// an outer type and its nested types.
type Class struct {
	Spanned
	Name      string
	Kind      ClassKind
	Modifiers Modifiers

	// SyntheticPublic is set when public was applied by default rather
	// than written.
	SyntheticPublic bool

	Generics    []*GenericType
	SuperClass  *TypeRef
	Interfaces  []*TypeRef
	Annotations []*Annotation

	Fields             []*Field
	Properties         []*Property
	Methods            []*Method
	Constructors       []*Method
	ObjectInitializers []*BlockStmt
	StaticInitializers []*BlockStmt

	Outer           *Class
	EnclosingMethod *Method
	Anonymous       bool
	Script          bool

	// EnumConstant marks the anonymous body of an enum constant.
	EnumConstant bool
}

func (c *Class) PackageName() string {
	if i := strings.LastIndex(c.Name, "."); i >= 0 {
		return c.Name[:i]
	}
	return ""
}

func (c *Class) NameWithoutPackage() string {
	return c.Name[strings.LastIndex(c.Name, ".")+1:]
}

// SimpleName is the name as written in source, without outer types.
func (c *Class) SimpleName() string {
	name := c.NameWithoutPackage()
	return name[strings.LastIndex(name, "$")+1:]
}

func (c *Class) IsInterface() bool {
	return c.Modifiers.Has(ModInterface)
}

func (c *Class) IsAnnotationDefinition() bool {
	return c.Kind == ClassKindAnnotation
}

func (c *Class) IsTrait() bool {
	for _, a := range c.Annotations {
		if a.Type.Name == TraitTypeName {
			return true
		}
	}
	return false
}

// Ref returns a type reference to c.
func (c *Class) Ref() *TypeRef {
	return &TypeRef{Name: c.Name, Class: c}
}

func (c *Class) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (c *Class) Property(name string) *Property {
	for _, p := range c.Properties {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (c *Class) Method(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (c *Class) AddField(f *Field) {
	f.Owner = c
	c.Fields = append(c.Fields, f)
}

func (c *Class) RemoveField(name string) {
	for i, f := range c.Fields {
		if f.Name == name {
			c.Fields = append(c.Fields[:i], c.Fields[i+1:]...)
			return
		}
	}
}

// AddProperty records p and lists its backing field unless the class
// already holds that very field.
func (c *Class) AddProperty(p *Property) {
	c.Properties = append(c.Properties, p)
	for _, f := range c.Fields {
		if f == p.Field {
			return
		}
	}
	c.AddField(p.Field)
}

func (c *Class) AddMethod(m *Method) {
	m.Owner = c
	c.Methods = append(c.Methods, m)
}

func (c *Class) AddConstructor(m *Method) {
	m.Owner = c
	c.Constructors = append(c.Constructors, m)
}

func (c *Class) AddInterface(t *TypeRef) {
	for _, existing := range c.Interfaces {
		if existing.Name == t.Name {
			return
		}
	}
	c.Interfaces = append(c.Interfaces, t)
}

func (c *Class) AddAnnotation(a *Annotation) {
	c.Annotations = append(c.Annotations, a)
}

type Field struct {
	Spanned
	Name         string
	Modifiers    Modifiers
	Type         *TypeRef
	InitialValue Expr
	Annotations  []*Annotation
	Owner        *Class

	// Synthetic marks a backing field created for a property.
	Synthetic bool
}

func (f *Field) IsStatic() bool { return f.Modifiers.Has(ModStatic) }

// Property is a field declared without visibility. It is backed by a
// private field and gets accessors in a later phase.
type Property struct {
	Spanned
	Field     *Field
	Modifiers Modifiers
}

func (p *Property) Name() string { return p.Field.Name }

func (p *Property) Type() *TypeRef { return p.Field.Type }

// Method is a method or, with Constructor set, a constructor.
type Method struct {
	Spanned
	Name            string
	Modifiers       Modifiers
	SyntheticPublic bool
	ReturnType      *TypeRef
	Parameters      []*Parameter
	Exceptions      []*TypeRef
	Code            Stmt
	Generics        []*GenericType
	Annotations     []*Annotation
	Owner           *Class
	Constructor     bool

	// AnnotationDefault is set when Code holds the default value of an
	// annotation member.
	AnnotationDefault bool
}

func (m *Method) IsAbstract() bool { return m.Modifiers.Has(ModAbstract) }

func (m *Method) IsStatic() bool { return m.Modifiers.Has(ModStatic) }

// Signature renders name and parameter types, e.g. "add(int, Object)".
func (m *Method) Signature() string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.Type.String()
	}
	return m.Name + "(" + strings.Join(params, ", ") + ")"
}

type Parameter struct {
	Spanned
	Name         string
	Type         *TypeRef
	DefaultValue Expr
	Modifiers    Modifiers
	Annotations  []*Annotation
	VarArgs      bool
}

func (p *Parameter) HasDefaultValue() bool { return p.DefaultValue != nil }

// AnnotationMember is one name/value pair of an annotation, in source
// order.
type AnnotationMember struct {
	Name  string
	Value Expr
}

type Annotation struct {
	Spanned
	Type    *TypeRef
	Members []*AnnotationMember
}

func NewAnnotation(t *TypeRef) *Annotation {
	return &Annotation{Type: t}
}

func (a *Annotation) Member(name string) Expr {
	for _, m := range a.Members {
		if m.Name == name {
			return m.Value
		}
	}
	return nil
}

func (a *Annotation) SetMember(name string, value Expr) {
	for _, m := range a.Members {
		if m.Name == name {
			m.Value = value
			return
		}
	}
	a.Members = append(a.Members, &AnnotationMember{Name: name, Value: value})
}
