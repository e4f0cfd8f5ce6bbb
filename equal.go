package smartdiff

import (
	"reflect"
	"time"
)

// EqualsFunc decides if two values are equivalent for comparison purposes
type EqualsFunc func(left, right interface{}) bool

// PathTransformationsProvider picks the transformations for a specific path.
// returning ok == false defers to the global transformation list, a present
// (possibly empty) list replaces it for that path
type PathTransformationsProvider func(path []string) (ts []Transformation, ok bool)

// Equivalence builds an EqualsFunc that applies ts to both sides before
// comparing them. Dates are compared by millisecond timestamp, everything else
// by strict equality: same dynamic type & value for comparable values, same
// reference for maps, slices & other reference types. Nested structures are
// never compared deeply
func Equivalence(ts []Transformation) EqualsFunc {
	return func(left, right interface{}) bool {
		left = applyTransformations(ts, left)
		right = applyTransformations(ts, right)

		if lt, ok := asTime(left); ok {
			if rt, ok := asTime(right); ok {
				return lt.UnixMilli() == rt.UnixMilli()
			}
		}
		return strictEqual(left, right)
	}
}

func strictEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		// structs & arrays are comparable by type, but may still hold
		// uncomparable values in interface fields
		switch ta.Kind() {
		case reflect.Struct, reflect.Array:
			return safeEqual(a, b)
		}
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}

// safeEqual compares two values with ==, treating a runtime comparison panic
// as inequality
func safeEqual(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// transformationsFor resolves the transformations governing path. a configured
// per-path provider takes priority over the global list whenever it returns a
// list
func (cfg *CompareConfig) transformationsFor(path Path) []Transformation {
	if cfg.PathTransformations != nil {
		if ts, ok := cfg.PathTransformations(path); ok {
			return ts
		}
	}
	return cfg.Transformations
}

// equivalent reports whether an edit record is not meaningful. only Edit
// records are ever equivalent, presence/absence differences always survive
func (cfg *CompareConfig) equivalent(r Record) bool {
	if r.Kind != KindEdit {
		return false
	}
	return Equivalence(cfg.transformationsFor(r.Path))(r.Left, r.Right)
}
