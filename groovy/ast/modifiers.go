package ast

import "strings"

// Modifiers is a set of declaration modifiers. The bit layout follows
// the JVM access flags so later phases can emit it directly.
type Modifiers uint32

const (
	ModPublic       Modifiers = 0x0001
	ModPrivate      Modifiers = 0x0002
	ModProtected    Modifiers = 0x0004
	ModStatic       Modifiers = 0x0008
	ModFinal        Modifiers = 0x0010
	ModSynchronized Modifiers = 0x0020
	ModVolatile     Modifiers = 0x0040
	ModTransient    Modifiers = 0x0080
	ModNative       Modifiers = 0x0100
	ModInterface    Modifiers = 0x0200
	ModAbstract     Modifiers = 0x0400
	ModStrict       Modifiers = 0x0800
	ModSynthetic    Modifiers = 0x1000
	ModAnnotation   Modifiers = 0x2000
	ModEnum         Modifiers = 0x4000

	ModVisibility = ModPublic | ModPrivate | ModProtected
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrict, "strictfp"},
	{ModInterface, "interface"},
	{ModAnnotation, "annotation"},
	{ModEnum, "enum"},
	{ModSynthetic, "synthetic"},
}

func (m Modifiers) Has(flags Modifiers) bool {
	return m&flags == flags
}

func (m Modifiers) HasAny(flags Modifiers) bool {
	return m&flags != 0
}

// ModifierNamed returns the flag for a source keyword.
func ModifierNamed(name string) (Modifiers, bool) {
	for _, mn := range modifierNames {
		if mn.name == name {
			return mn.mod, true
		}
	}
	return 0, false
}

func (m Modifiers) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}
