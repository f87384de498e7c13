package transform

import (
	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

var modifierKinds = map[cst.Kind]struct {
	mod  ast.Modifiers
	name string
}{
	cst.KindPrivate:      {ast.ModPrivate, "private"},
	cst.KindProtected:    {ast.ModProtected, "protected"},
	cst.KindPublic:       {ast.ModPublic, "public"},
	cst.KindStatic:       {ast.ModStatic, "static"},
	cst.KindFinal:        {ast.ModFinal, "final"},
	cst.KindAbstract:     {ast.ModAbstract, "abstract"},
	cst.KindNative:       {ast.ModNative, "native"},
	cst.KindTransient:    {ast.ModTransient, "transient"},
	cst.KindVolatile:     {ast.ModVolatile, "volatile"},
	cst.KindSynchronized: {ast.ModSynchronized, "synchronized"},
	cst.KindStrictfp:     {ast.ModStrict, "strictfp"},
}

type modifierSet struct {
	mods        ast.Modifiers
	annotations []*ast.Annotation

	// syntheticPublic is set when public came from the defaults.
	syntheticPublic bool
}

// modifiers reads a Modifiers node, which may be nil. Without an access
// modifier the defaults are applied.
func (c *converter) modifiers(s scope, n *cst.Node, defaults ast.Modifiers) modifierSet {
	var set modifierSet
	access := false
	if n != nil {
		for _, child := range n.Children {
			if child.Kind == cst.KindAnnotation {
				set.annotations = append(set.annotations, c.annotation(s, child))
				continue
			}
			m, ok := modifierKinds[child.Kind]
			if !ok {
				unknownNode(child)
			}
			if set.mods.Has(m.mod) {
				abort(ErrModifier, child, "Cannot repeat modifier: %s", m.name)
			}
			if m.mod.HasAny(ast.ModVisibility) {
				if access {
					abort(ErrModifier, child, "Cannot specify modifier: %s when access scope has already been defined", m.name)
				}
				access = true
			}
			set.mods |= m.mod
		}
	}
	if !access {
		set.mods |= defaults
		set.syntheticPublic = defaults == ast.ModPublic
	}
	return set
}

// forbid fails when mods contains any of the given modifiers.
func forbid(n *cst.Node, what string, mods ast.Modifiers, forbidden ...ast.Modifiers) {
	for _, f := range forbidden {
		if mods.Has(f) {
			abort(ErrModifier, n, "%s has an incorrect modifier '%s'.", what, f)
		}
	}
}
