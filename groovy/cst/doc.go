// Package cst holds the concrete syntax tree produced by an external
// parser, together with the pass that gives every node an end position.
//
// # Shape
//
// A unit is a CompilationUnit whose children are the top-level nodes in
// source order. Parsers that emit first-child/next-sibling trees are
// converted once with FromLinked; JSON encoded trees are read with
// Decode.
//
// Children of the structural kinds appear in the order below. Brackets
// mark optional children, a trailing * repeats.
//
//	PackageDef        [Annotations] Name
//	Import            [Annotations] Name | As(Name, Ident)
//	StaticImport      [Annotations] Name | As(Name, Ident)
//	ClassDef          [Modifiers] Ident [TypeParameters] [ExtendsClause] [ImplementsClause] ObjBlock
//	TraitDef          same as ClassDef
//	InterfaceDef      [Modifiers] Ident [TypeParameters] [ExtendsClause] ObjBlock
//	AnnotationDef     [Modifiers] Ident [TypeParameters] [ExtendsClause] ObjBlock
//	EnumDef           [Modifiers] Ident [ImplementsClause] ObjBlock
//	EnumConstantDef   [Annotations] Ident [Elist] [ObjBlock]
//	MethodDef         [TypeParameters] [Modifiers] [Type] Ident [Parameters] [Throws] [Slist | Expr]
//	CtorIdent         [Modifiers] Parameters [Throws] Slist
//	VariableDef       [Modifiers] [Type] Ident [Assign(expr)]
//	VariableDef       [Modifiers] [Type] Assign(TupleLHS(VariableDef*), [expr])
//	ParameterDef      [Modifiers] [Type] Ident [Assign(expr)]
//	StaticInit        Slist
//	InstanceInit      Slist
//	Modifiers         (modifier keyword | Annotation)*
//	Annotation        Name (AnnotationMemberValuePair(Ident, value) | value)*
//	Type              Name | ArrayDeclarator(Type-like) | (nothing: dynamic)
//	Name              Ident[TypeArguments] | Dot(Name, Ident[TypeArguments]) | Dot(Name, Star)
//	TypeParameter     Ident [TypeUpperBounds(Type*)]
//	TypeArgument      Type | WildcardType [TypeUpperBounds | TypeLowerBounds]
//
// Statements:
//
//	Slist             statement*
//	LabeledStat       Ident statement
//	If                expr statement [statement]
//	For               (ClosureList | ForInIterable) (statement | Semi)
//	ForInIterable     (Ident | VariableDef) expr
//	Switch            expr CaseGroup*
//	CaseGroup         (Case(expr) | Default)* [statement]
//	Try               Slist Catch* [Finally]
//	Catch             Multicatch(Ident | MulticatchTypes(Name*) Ident) Slist
//
// Expressions follow the same pattern: operators hold their operands in
// order, MethodCall holds the callee followed by an Elist and any
// trailing ClosableBlock arguments, and New holds the type name followed
// by either an Elist (plus an optional ObjBlock for an anonymous body)
// or an ArrayDeclarator of ArrayDim nodes.
//
// # Positions
//
//	class A {            ClassDef starts at 1:1
//	  int x              VariableDef starts at 2:3
//	}
//
// Only starts are known after parsing. Annotate derives each end from
// the start of the next node in pre-order, so ClassDef above ends where
// its first child (Modifiers or Ident) begins before the cover step
// widens it to enclose its members.
package cst
