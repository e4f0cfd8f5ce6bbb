package smartdiff

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Transformation converts a single value before comparison. Transformations
// only affect equivalence, reported values are never transformed.
// Transformations must be pure & total
type Transformation func(v interface{}) interface{}

var (
	// ToString converts any truthy value to its string representation. Falsy
	// values (nil, Undefined, false, zero numbers, "" and NaN) pass through
	// unchanged
	ToString Transformation = toString
	// Trim strips leading & trailing whitespace from strings
	Trim Transformation = trimString
	// Uppercase upper-cases strings
	Uppercase Transformation = uppercaseString
	// NullOrUndefinedAsEmptyString maps nil & Undefined to ""
	NullOrUndefinedAsEmptyString Transformation = nullOrUndefinedAsEmptyString
)

var builtinTransformations = map[string]Transformation{
	"toString":                     ToString,
	"trim":                         Trim,
	"uppercase":                    Uppercase,
	"nullOrUndefinedAsEmptyString": NullOrUndefinedAsEmptyString,
}

// TransformationByName looks up a built-in transformation by the name used in
// configuration files
func TransformationByName(name string) (Transformation, bool) {
	t, ok := builtinTransformations[name]
	return t, ok
}

func toString(v interface{}) interface{} {
	if falsy(v) {
		return v
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x, 64)
	case float32:
		return formatNumber(float64(x), 32)
	}
	return fmt.Sprint(v)
}

// formatNumber renders floats the way JSON documents write them: plain
// decimal notation between 1e-6 & 1e21, exponent notation outside that range
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'e', -1, bitSize)
}

func trimString(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}

func uppercaseString(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s)
	}
	return v
}

func nullOrUndefinedAsEmptyString(v interface{}) interface{} {
	if v == nil || IsUndefined(v) {
		return ""
	}
	return v
}

// RemoveSequence returns a transformation that strips every occurrence of seq
// from string values
func RemoveSequence(seq string) Transformation {
	return func(v interface{}) interface{} {
		if s, ok := v.(string); ok && seq != "" {
			return strings.Replace(s, seq, "", -1)
		}
		return v
	}
}

// StartOfDay returns a transformation that truncates dates to midnight in loc,
// making any two instants on the same day equivalent. a nil loc means UTC
func StartOfDay(loc *time.Location) Transformation {
	if loc == nil {
		loc = time.UTC
	}
	return func(v interface{}) interface{} {
		t, ok := asTime(v)
		if !ok {
			return v
		}
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

// applyTransformations folds a value through ts in order
func applyTransformations(ts []Transformation, v interface{}) interface{} {
	for _, t := range ts {
		v = t(v)
	}
	return v
}

// falsy reports the values a loosely-typed language would treat as false
func falsy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case UndefinedValue:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
