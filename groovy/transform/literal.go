package transform

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dhamidi/grove/groovy/ast"
	"github.com/dhamidi/grove/groovy/cst"
)

// number converts the literal lit. With negative set the literal is
// parsed with a leading minus so that the most negative int and long
// values stay in range. The result carries the span of spanNode.
func (c *converter) number(lit, spanNode *cst.Node, negative bool) ast.Expr {
	raw := lit.Text
	if negative {
		raw = "-" + raw
	}

	var value any
	var err error
	switch lit.Kind {
	case cst.KindNumFloat, cst.KindNumDouble, cst.KindNumBigDecimal:
		value, err = ParseDecimal(raw)
	default:
		value, err = ParseInteger(raw)
	}
	if err != nil {
		abort(ErrStructure, spanNode, "%s", err)
	}
	return at(&ast.ConstantExpr{Value: value, Raw: raw}, spanNode)
}

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
	minInt64 = big.NewInt(math.MinInt64)
	maxInt64 = big.NewInt(math.MaxInt64)
)

// ParseInteger parses an integer literal into an int32, int64 or
// *big.Int. Underscores are ignored, 0x, 0b and a leading 0 select hex,
// binary and octal, and a trailing i, l or g forces the type. Without a
// suffix the narrowest type that holds the value is chosen. Hex, octal
// and binary literals are read as two's complement bit patterns, so
// 0xFFFFFFFF is the int -1.
func ParseInteger(text string) (any, error) {
	s := strings.ReplaceAll(text, "_", "")
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	var suffix byte
	if n := len(s); n > 0 && strings.IndexByte("iIlLgG", s[n-1]) >= 0 {
		suffix, s = lower(s[n-1]), s[:n-1]
	}

	radix := 10
	switch {
	case hasPrefixFold(s, "0x"):
		radix, s = 16, s[2:]
	case hasPrefixFold(s, "0b"):
		radix, s = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		radix, s = 8, s[1:]
	}

	v, ok := new(big.Int).SetString(s, radix)
	if s == "" || !ok {
		return nil, fmt.Errorf("Invalid number literal: %s", text)
	}
	if negative {
		v.Neg(v)
	}

	if radix != 10 {
		return truncate(v, suffix), nil
	}

	switch suffix {
	case 'i':
		if v.Cmp(minInt32) < 0 || v.Cmp(maxInt32) > 0 {
			return nil, fmt.Errorf("Number of value %s does not fit in the range of int, but int was enforced.", v)
		}
		return int32(v.Int64()), nil
	case 'l':
		if !v.IsInt64() {
			return nil, fmt.Errorf("Number of value %s does not fit in the range of long, but long was enforced.", v)
		}
		return v.Int64(), nil
	case 'g':
		return v, nil
	}

	switch {
	case v.Cmp(minInt32) >= 0 && v.Cmp(maxInt32) <= 0:
		return int32(v.Int64()), nil
	case v.Cmp(minInt64) >= 0 && v.Cmp(maxInt64) <= 0:
		return v.Int64(), nil
	}
	return v, nil
}

// truncate reads the low bits of v as a signed value of the forced or
// narrowest fitting width.
func truncate(v *big.Int, suffix byte) any {
	bits := v.BitLen()
	switch {
	case suffix == 'g':
		return v
	case suffix == 'i' || suffix == 0 && bits <= 32:
		low := new(big.Int).And(v, big.NewInt(math.MaxUint32))
		return int32(uint32(low.Uint64()))
	case suffix == 'l' || bits <= 64:
		low := new(big.Int).And(v, new(big.Int).SetUint64(math.MaxUint64))
		return int64(low.Uint64())
	}
	return v
}

// ParseDecimal parses a decimal literal into a float32, float64 or
// *big.Rat. A trailing f or d forces float or double; without a suffix,
// or with g, the exact value is kept.
func ParseDecimal(text string) (any, error) {
	s := strings.ReplaceAll(text, "_", "")

	var suffix byte
	if n := len(s); n > 0 && strings.IndexByte("fFdDgG", s[n-1]) >= 0 {
		suffix, s = lower(s[n-1]), s[:n-1]
	}

	switch suffix {
	case 'f':
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, decimalError(text, "float", err)
		}
		return float32(f), nil
	case 'd':
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, decimalError(text, "double", err)
		}
		return f, nil
	}

	r, ok := new(big.Rat).SetString(s)
	if s == "" || !ok {
		return nil, fmt.Errorf("Invalid number literal: %s", text)
	}
	return r, nil
}

func decimalError(text, typ string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return fmt.Errorf("Number of value %s does not fit in the range of %s, but %s was enforced.", text, typ, typ)
	}
	return fmt.Errorf("Invalid number literal: %s", text)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// gstring converts an interpolated string. Its children alternate
// between string literals and expressions, starting with a literal; a
// missing trailing literal is taken as empty.
func (c *converter) gstring(s scope, n *cst.Node) ast.Expr {
	g := at(&ast.GStringExpr{}, n)
	var verbatim strings.Builder
	for i, child := range n.Children {
		wantString := i%2 == 0
		isString := child.Kind == cst.KindStringLiteral
		switch {
		case wantString && !isString:
			abort(ErrStructure, child, "Expected a string literal in interpolated string, found: %s", child.Kind)
		case !wantString && isString:
			abort(ErrStructure, child, "Expected an expression in interpolated string, found: %s", child.Kind)
		case isString:
			g.Strings = append(g.Strings, at(ast.StringConst(child.Text), child))
			verbatim.WriteString(child.Text)
		default:
			value := c.expression(s, child)
			g.Values = append(g.Values, value)
			verbatim.WriteString("$")
			verbatim.WriteString(value.Text())
		}
	}
	if len(g.Strings) == len(g.Values) {
		g.Strings = append(g.Strings, ast.StringConst(""))
	}
	g.Verbatim = verbatim.String()
	return g
}
