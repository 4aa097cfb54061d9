package argbind

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Truthy is the host's boolean conversion. It is total: no value fails
// to convert to a boolean.
func Truthy(v Value) bool {
	switch v.K {
	case KindUndefined:
		return false
	case KindBool:
		return v.B
	case KindNumber:
		return v.N != 0
	case KindString:
		return v.S != ""
	case KindList:
		return len(v.L) != 0
	case KindDict:
		return len(v.M) != 0
	case KindObject:
		if v.O != nil {
			if t, ok := v.O.(interface{ Truthy() bool }); ok {
				return t.Truthy()
			}
		}
		return true
	case KindOther:
		return v.X != nil
	default:
		return true
	}
}

// ToNumber is the host's numeric conversion. Object payloads may raise
// through their own ToNumber capability.
func ToNumber(v Value) (float64, error) {
	switch v.K {
	case KindNumber:
		return v.N, nil
	case KindBool:
		if v.B {
			return 1, nil
		}
		return 0, nil
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.S), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to number", v.S)
		}
		return n, nil
	case KindObject:
		if v.O != nil {
			if c, ok := v.O.(interface{ ToNumber() (float64, error) }); ok {
				return c.ToNumber()
			}
		}
		return 0, fmt.Errorf("cannot convert %s to number", v.K)
	default:
		return 0, fmt.Errorf("cannot convert %s to number", v.K)
	}
}

// ToString is the host's string conversion. Lists and dicts stringify
// as JSON; object payloads may raise through their own ToString.
func ToString(v Value) (string, error) {
	switch v.K {
	case KindString:
		return v.S, nil
	case KindNumber:
		return strconv.FormatFloat(v.N, 'g', -1, 64), nil
	case KindBool:
		if v.B {
			return "true", nil
		}
		return "false", nil
	case KindUndefined:
		return "", nil
	case KindList, KindDict:
		data, err := json.Marshal(toIface(v))
		if err != nil {
			return "", fmt.Errorf("json encode failed")
		}
		return string(data), nil
	case KindObject:
		if v.O != nil {
			if c, ok := v.O.(interface{ ToString() (string, error) }); ok {
				return c.ToString()
			}
		}
		return "", fmt.Errorf("cannot stringify %s", v.K)
	default:
		return "", fmt.Errorf("cannot stringify %s", v.K)
	}
}

func toIface(v Value) any {
	switch v.K {
	case KindUndefined:
		return nil
	case KindBool:
		return v.B
	case KindNumber:
		return v.N
	case KindString:
		return v.S
	case KindList:
		out := make([]any, 0, len(v.L))
		for _, it := range v.L {
			out = append(out, toIface(it))
		}
		return out
	case KindDict:
		out := make(map[string]any, len(v.M))
		for k, it := range v.M {
			out[k] = toIface(it)
		}
		return out
	case KindObject:
		if v.O != nil {
			if t, ok := v.O.(interface{ ToInterface() any }); ok {
				return t.ToInterface()
			}
		}
		return fmt.Sprintf("<%s>", v.K)
	default:
		return fmt.Sprintf("<%s>", v.K)
	}
}
