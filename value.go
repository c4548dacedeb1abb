package interactiveclap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupported is returned by [ParseValue] for types it cannot parse.
var ErrUnsupported = errors.New("interactiveclap: unsupported value type")

// ParseValue parses the text form of a T. Types implementing
// [encoding.TextUnmarshaler] parse themselves, [time.Duration] uses
// [time.ParseDuration] and other types are parsed by their kind.
func ParseValue[T any](s string) (T, error) {
	var v T

	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		err := u.UnmarshalText([]byte(s))
		return v, err
	}

	if d, ok := any(&v).(*time.Duration); ok {
		parsed, err := time.ParseDuration(strings.TrimSpace(s))
		*d = parsed
		return v, err
	}

	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return v, err
		}
		rv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)

	default:
		return v, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
	}

	return v, nil
}

// FormatValue returns the text form of v which [ParseValue] reads back.
func FormatValue[T any](v T) string {
	if m, ok := any(v).(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}
