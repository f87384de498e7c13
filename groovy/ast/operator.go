package ast

// Operator is the closed set of operators an expression may apply.
type Operator int

const (
	OpInvalid Operator = iota

	OpAssign
	OpPlusAssign
	OpMinusAssign
	OpMultiplyAssign
	OpDivideAssign
	OpModAssign
	OpPowerAssign
	OpLeftShiftAssign
	OpRightShiftAssign
	OpUnsignedRightShiftAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign

	OpEqual
	OpNotEqual
	OpIdentical
	OpNotIdentical
	OpCompareTo
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	OpAnd
	OpOr
	OpNot

	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitNot

	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpMod
	OpPower
	OpNegate
	OpPositive
	OpIncrement
	OpDecrement

	OpLeftShift
	OpRightShift
	OpUnsignedRightShift

	OpFindRegex
	OpMatchRegex
	OpIn
	OpInstanceOf
	OpAs

	OpRange
	OpRangeExclusive
	OpSpread
	OpSpreadMap
	OpIndex
)

var operatorSymbols = map[Operator]string{
	OpAssign:                   "=",
	OpPlusAssign:               "+=",
	OpMinusAssign:              "-=",
	OpMultiplyAssign:           "*=",
	OpDivideAssign:             "/=",
	OpModAssign:                "%=",
	OpPowerAssign:              "**=",
	OpLeftShiftAssign:          "<<=",
	OpRightShiftAssign:         ">>=",
	OpUnsignedRightShiftAssign: ">>>=",
	OpBitAndAssign:             "&=",
	OpBitOrAssign:              "|=",
	OpBitXorAssign:             "^=",
	OpEqual:                    "==",
	OpNotEqual:                 "!=",
	OpIdentical:                "===",
	OpNotIdentical:             "!==",
	OpCompareTo:                "<=>",
	OpLess:                     "<",
	OpLessEqual:                "<=",
	OpGreater:                  ">",
	OpGreaterEqual:             ">=",
	OpAnd:                      "&&",
	OpOr:                       "||",
	OpNot:                      "!",
	OpBitAnd:                   "&",
	OpBitOr:                    "|",
	OpBitXor:                   "^",
	OpBitNot:                   "~",
	OpPlus:                     "+",
	OpMinus:                    "-",
	OpMultiply:                 "*",
	OpDivide:                   "/",
	OpMod:                      "%",
	OpPower:                    "**",
	OpNegate:                   "-",
	OpPositive:                 "+",
	OpIncrement:                "++",
	OpDecrement:                "--",
	OpLeftShift:                "<<",
	OpRightShift:               ">>",
	OpUnsignedRightShift:       ">>>",
	OpFindRegex:                "=~",
	OpMatchRegex:               "==~",
	OpIn:                       "in",
	OpInstanceOf:               "instanceof",
	OpAs:                       "as",
	OpRange:                    "..",
	OpRangeExclusive:           "..<",
	OpSpread:                   "*",
	OpSpreadMap:                "*:",
	OpIndex:                    "[",
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return "?"
}

// IsAssignment reports whether op stores into its left operand.
func (op Operator) IsAssignment() bool {
	return op >= OpAssign && op <= OpBitXorAssign
}
