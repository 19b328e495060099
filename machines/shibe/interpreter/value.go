package interpreter

import (
	"math"
	"strconv"

	"github.com/robbyt/go-shibe/machines/shibe/tokenizer"
)

// Values are int64, float64, string, bool or nil.

// Format renders a value the way print does.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return "?"
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	default:
		return "unknown"
	}
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func equal(l, r any) bool {
	lf, lNum := toFloat(l)
	rf, rNum := toFloat(r)
	if lNum && rNum {
		return lf == rf
	}
	return l == r
}

// arith applies + - * / %. Integer operands stay integers; / truncates.
func arith(op tokenizer.Kind, l, r any) (any, error) {
	if ls, ok := l.(string); ok && op == tokenizer.Plus {
		if rs, ok := r.(string); ok {
			return ls + rs, nil
		}
	}

	li, lInt := l.(int64)
	ri, rInt := r.(int64)
	if lInt && rInt {
		switch op {
		case tokenizer.Plus:
			return li + ri, nil
		case tokenizer.Minus:
			return li - ri, nil
		case tokenizer.Star:
			return li * ri, nil
		case tokenizer.Slash, tokenizer.Percent:
			if ri == 0 {
				return nil, ErrDivisionByZero
			}
			if op == tokenizer.Slash {
				return li / ri, nil
			}
			return li % ri, nil
		}
	}

	lf, lNum := toFloat(l)
	rf, rNum := toFloat(r)
	if !lNum || !rNum {
		return nil, mismatch(op, l, r)
	}
	switch op {
	case tokenizer.Plus:
		return lf + rf, nil
	case tokenizer.Minus:
		return lf - rf, nil
	case tokenizer.Star:
		return lf * rf, nil
	default:
		if rf == 0 {
			return nil, ErrDivisionByZero
		}
		if op == tokenizer.Slash {
			return lf / rf, nil
		}
		return math.Mod(lf, rf), nil
	}
}

// compare applies < <= > >= to two numbers or two strings.
func compare(op tokenizer.Kind, l, r any) (bool, error) {
	var c int
	ls, lStr := l.(string)
	rs, rStr := r.(string)
	lf, lNum := toFloat(l)
	rf, rNum := toFloat(r)

	switch {
	case lStr && rStr:
		c = cmp(ls, rs)
	case lNum && rNum:
		c = cmp(lf, rf)
	default:
		return false, mismatch(op, l, r)
	}

	switch op {
	case tokenizer.Less:
		return c < 0, nil
	case tokenizer.LessEq:
		return c <= 0, nil
	case tokenizer.Greater:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

func cmp[T string | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
