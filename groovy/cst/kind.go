package cst

// Kind identifies the grammar construct a Node stands for. The set is
// closed: every kind a parser may emit is listed here.
type Kind int

const (
	KindInvalid Kind = iota

	// Structure
	KindCompilationUnit
	KindPackageDef
	KindImport
	KindStaticImport
	KindClassDef
	KindInterfaceDef
	KindTraitDef
	KindEnumDef
	KindAnnotationDef
	KindMethodDef
	KindAnnotationFieldDef
	KindCtorIdent
	KindVariableDef
	KindStaticInit
	KindInstanceInit
	KindEnumConstantDef
	KindObjBlock
	KindModifiers
	KindAnnotations
	KindAnnotation
	KindAnnotationMemberValuePair
	KindAnnotationArrayInit
	KindExtendsClause
	KindImplementsClause
	KindTypeParameters
	KindTypeParameter
	KindTypeUpperBounds
	KindTypeLowerBounds
	KindTypeArguments
	KindTypeArgument
	KindWildcardType
	KindType
	KindArrayDeclarator
	KindArrayDim
	KindParameters
	KindImplicitParameters
	KindParameterDef
	KindVariableParameterDef
	KindThrows

	// Modifier keywords
	KindPrivate
	KindProtected
	KindPublic
	KindStatic
	KindFinal
	KindAbstract
	KindNative
	KindTransient
	KindVolatile
	KindSynchronized
	KindStrictfp

	// Statements
	KindSlist
	KindLabeledStat
	KindAssert
	KindBreak
	KindContinue
	KindIf
	KindFor
	KindForInIterable
	KindClosureList
	KindReturn
	KindSwitch
	KindCaseGroup
	KindCase
	KindDefault
	KindTry
	KindCatch
	KindMulticatch
	KindMulticatchTypes
	KindFinally
	KindThrow
	KindWhile
	KindSemi
	KindEmptyStat
	KindExpr
	KindElist

	// Primary expressions
	KindIdent
	KindThis
	KindSuper
	KindTrue
	KindFalse
	KindNull
	KindStringLiteral
	KindStringConstructor
	KindNumInt
	KindNumLong
	KindNumBigInt
	KindNumFloat
	KindNumDouble
	KindNumBigDecimal

	// Compound expressions
	KindMethodCall
	KindNew
	KindCtorCall
	KindSuperCtorCall
	KindQuestion
	KindElvis
	KindDot
	KindOptionalDot
	KindSpreadDot
	KindListConstructor
	KindMapConstructor
	KindLabeledArg
	KindSpreadArg
	KindSpreadMapArg
	KindMemberPointer
	KindIndexOp
	KindInstanceof
	KindAs
	KindTypeCast
	KindClosableBlock
	KindTupleLHS
	KindDynamicMember
	KindSelectSlot
	KindStar

	// Unary operators
	KindLnot
	KindUnaryMinus
	KindUnaryPlus
	KindBnot
	KindInc
	KindDec
	KindPostInc
	KindPostDec

	// Binary operators
	KindAssign
	KindPlusAssign
	KindMinusAssign
	KindStarAssign
	KindDivAssign
	KindModAssign
	KindStarStarAssign
	KindSlAssign
	KindSrAssign
	KindBsrAssign
	KindBandAssign
	KindBorAssign
	KindBxorAssign
	KindEqual
	KindNotEqual
	KindIdentical
	KindNotIdentical
	KindCompareTo
	KindLt
	KindLe
	KindGt
	KindGe
	KindLand
	KindLor
	KindBand
	KindBor
	KindBxor
	KindPlus
	KindMinus
	KindMul
	KindDiv
	KindMod
	KindStarStar
	KindSl
	KindSr
	KindBsr
	KindRegexFind
	KindRegexMatch
	KindRangeInclusive
	KindRangeExclusive
	KindIn

	kindCount
)

var kindNames = map[Kind]string{
	KindInvalid:                   "Invalid",
	KindCompilationUnit:           "CompilationUnit",
	KindPackageDef:                "PackageDef",
	KindImport:                    "Import",
	KindStaticImport:              "StaticImport",
	KindClassDef:                  "ClassDef",
	KindInterfaceDef:              "InterfaceDef",
	KindTraitDef:                  "TraitDef",
	KindEnumDef:                   "EnumDef",
	KindAnnotationDef:             "AnnotationDef",
	KindMethodDef:                 "MethodDef",
	KindAnnotationFieldDef:        "AnnotationFieldDef",
	KindCtorIdent:                 "CtorIdent",
	KindVariableDef:               "VariableDef",
	KindStaticInit:                "StaticInit",
	KindInstanceInit:              "InstanceInit",
	KindEnumConstantDef:           "EnumConstantDef",
	KindObjBlock:                  "ObjBlock",
	KindModifiers:                 "Modifiers",
	KindAnnotations:               "Annotations",
	KindAnnotation:                "Annotation",
	KindAnnotationMemberValuePair: "AnnotationMemberValuePair",
	KindAnnotationArrayInit:       "AnnotationArrayInit",
	KindExtendsClause:             "ExtendsClause",
	KindImplementsClause:          "ImplementsClause",
	KindTypeParameters:            "TypeParameters",
	KindTypeParameter:             "TypeParameter",
	KindTypeUpperBounds:           "TypeUpperBounds",
	KindTypeLowerBounds:           "TypeLowerBounds",
	KindTypeArguments:             "TypeArguments",
	KindTypeArgument:              "TypeArgument",
	KindWildcardType:              "WildcardType",
	KindType:                      "Type",
	KindArrayDeclarator:           "ArrayDeclarator",
	KindArrayDim:                  "ArrayDim",
	KindParameters:                "Parameters",
	KindImplicitParameters:        "ImplicitParameters",
	KindParameterDef:              "ParameterDef",
	KindVariableParameterDef:      "VariableParameterDef",
	KindThrows:                    "Throws",
	KindPrivate:                   "Private",
	KindProtected:                 "Protected",
	KindPublic:                    "Public",
	KindStatic:                    "Static",
	KindFinal:                     "Final",
	KindAbstract:                  "Abstract",
	KindNative:                    "Native",
	KindTransient:                 "Transient",
	KindVolatile:                  "Volatile",
	KindSynchronized:              "Synchronized",
	KindStrictfp:                  "Strictfp",
	KindSlist:                     "Slist",
	KindLabeledStat:               "LabeledStat",
	KindAssert:                    "Assert",
	KindBreak:                     "Break",
	KindContinue:                  "Continue",
	KindIf:                        "If",
	KindFor:                       "For",
	KindForInIterable:             "ForInIterable",
	KindClosureList:               "ClosureList",
	KindReturn:                    "Return",
	KindSwitch:                    "Switch",
	KindCaseGroup:                 "CaseGroup",
	KindCase:                      "Case",
	KindDefault:                   "Default",
	KindTry:                       "Try",
	KindCatch:                     "Catch",
	KindMulticatch:                "Multicatch",
	KindMulticatchTypes:           "MulticatchTypes",
	KindFinally:                   "Finally",
	KindThrow:                     "Throw",
	KindWhile:                     "While",
	KindSemi:                      "Semi",
	KindEmptyStat:                 "EmptyStat",
	KindExpr:                      "Expr",
	KindElist:                     "Elist",
	KindIdent:                     "Ident",
	KindThis:                      "This",
	KindSuper:                     "Super",
	KindTrue:                      "True",
	KindFalse:                     "False",
	KindNull:                      "Null",
	KindStringLiteral:             "StringLiteral",
	KindStringConstructor:         "StringConstructor",
	KindNumInt:                    "NumInt",
	KindNumLong:                   "NumLong",
	KindNumBigInt:                 "NumBigInt",
	KindNumFloat:                  "NumFloat",
	KindNumDouble:                 "NumDouble",
	KindNumBigDecimal:             "NumBigDecimal",
	KindMethodCall:                "MethodCall",
	KindNew:                       "New",
	KindCtorCall:                  "CtorCall",
	KindSuperCtorCall:             "SuperCtorCall",
	KindQuestion:                  "Question",
	KindElvis:                     "Elvis",
	KindDot:                       "Dot",
	KindOptionalDot:               "OptionalDot",
	KindSpreadDot:                 "SpreadDot",
	KindListConstructor:           "ListConstructor",
	KindMapConstructor:            "MapConstructor",
	KindLabeledArg:                "LabeledArg",
	KindSpreadArg:                 "SpreadArg",
	KindSpreadMapArg:              "SpreadMapArg",
	KindMemberPointer:             "MemberPointer",
	KindIndexOp:                   "IndexOp",
	KindInstanceof:                "Instanceof",
	KindAs:                        "As",
	KindTypeCast:                  "TypeCast",
	KindClosableBlock:             "ClosableBlock",
	KindTupleLHS:                  "TupleLHS",
	KindDynamicMember:             "DynamicMember",
	KindSelectSlot:                "SelectSlot",
	KindStar:                      "Star",
	KindLnot:                      "Lnot",
	KindUnaryMinus:                "UnaryMinus",
	KindUnaryPlus:                 "UnaryPlus",
	KindBnot:                      "Bnot",
	KindInc:                       "Inc",
	KindDec:                       "Dec",
	KindPostInc:                   "PostInc",
	KindPostDec:                   "PostDec",
	KindAssign:                    "Assign",
	KindPlusAssign:                "PlusAssign",
	KindMinusAssign:               "MinusAssign",
	KindStarAssign:                "StarAssign",
	KindDivAssign:                 "DivAssign",
	KindModAssign:                 "ModAssign",
	KindStarStarAssign:            "StarStarAssign",
	KindSlAssign:                  "SlAssign",
	KindSrAssign:                  "SrAssign",
	KindBsrAssign:                 "BsrAssign",
	KindBandAssign:                "BandAssign",
	KindBorAssign:                 "BorAssign",
	KindBxorAssign:                "BxorAssign",
	KindEqual:                     "Equal",
	KindNotEqual:                  "NotEqual",
	KindIdentical:                 "Identical",
	KindNotIdentical:              "NotIdentical",
	KindCompareTo:                 "CompareTo",
	KindLt:                        "Lt",
	KindLe:                        "Le",
	KindGt:                        "Gt",
	KindGe:                        "Ge",
	KindLand:                      "Land",
	KindLor:                       "Lor",
	KindBand:                      "Band",
	KindBor:                       "Bor",
	KindBxor:                      "Bxor",
	KindPlus:                      "Plus",
	KindMinus:                     "Minus",
	KindMul:                       "Mul",
	KindDiv:                       "Div",
	KindMod:                       "Mod",
	KindStarStar:                  "StarStar",
	KindSl:                        "Sl",
	KindSr:                        "Sr",
	KindBsr:                       "Bsr",
	KindRegexFind:                 "RegexFind",
	KindRegexMatch:                "RegexMatch",
	KindRangeInclusive:            "RangeInclusive",
	KindRangeExclusive:            "RangeExclusive",
	KindIn:                        "In",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KindFromString is the inverse of Kind.String.
func KindFromString(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
