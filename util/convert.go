// Package util holds the value-conversion helpers behind the typed accessor
// layer and the secure terminal reader. The binding engine stores decoded
// values as any; these converters bridge them to concrete Go types on
// demand.
package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var ErrConversion = errors.New("unsupported type conversion")

// ListDelimiterFunc reports whether a rune separates list elements when a
// scalar string is read as a list. The default matches ',', '|' and ' '.
type ListDelimiterFunc func(r rune) bool

// DefaultListDelimiters is the delimiter set used when none is supplied.
func DefaultListDelimiters(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ToString renders a bound value as a string.
func ToString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int:
		return strconv.Itoa(t), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T to string", ErrConversion, v)
	}
}

// ToBool converts a bound value to bool. Strings are parsed with
// strconv.ParseBool.
func ToBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		val, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("%w: '%s' to bool", ErrConversion, t)
		}
		return val, nil
	default:
		return false, fmt.Errorf("%w: %T to bool", ErrConversion, v)
	}
}

// ToInt64 converts a bound value to int64. Float values convert only when
// integral.
func ToInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float64:
		if t != float64(int64(t)) {
			return 0, fmt.Errorf("%w: non-integral %v to int", ErrConversion, t)
		}
		return int64(t), nil
	case string:
		val, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s' to int", ErrConversion, t)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("%w: %T to int", ErrConversion, v)
	}
}

// ToFloat64 converts a bound value to float64.
func ToFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case int:
		return float64(t), nil
	case string:
		val, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s' to float", ErrConversion, t)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("%w: %T to float", ErrConversion, v)
	}
}

// ToTime converts a bound value to time.Time. Strings are parsed in any of
// the layouts dateparse recognizes, in the local timezone.
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		val, err := dateparse.ParseLocal(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: '%s' to time", ErrConversion, t)
		}
		return val, nil
	default:
		return time.Time{}, fmt.Errorf("%w: %T to time", ErrConversion, v)
	}
}

// ToStrings converts a bound value to a string slice. List values convert
// element-wise; a scalar string is split on the delimiter set.
func ToStrings(v any, delim ListDelimiterFunc) ([]string, error) {
	if delim == nil {
		delim = DefaultListDelimiters
	}
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			s, err := ToString(e)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	case string:
		return strings.FieldsFunc(t, func(r rune) bool { return delim(r) }), nil
	default:
		return nil, fmt.Errorf("%w: %T to string list", ErrConversion, v)
	}
}
