package smartdiff

import (
	"reflect"
	"sort"
	"strconv"
)

// WalkDiffer is a StructuralDiffer that walks both values in lockstep. It only
// understands the go types created by unmarshaling from JSON plus dates:
//
//	map[string]interface{}
//	[]interface{}
//	time.Time
//	string, float64, int, bool, nil
//
// other maps with string keys & other slices are walked via reflection. Record
// keys are visited in sorted order, making the output fully deterministic.
// Arrays are compared index by index, elements past the end of the shorter
// array are reported as ArrayEdit records
type WalkDiffer struct{}

// compile-time assertion
var _ StructuralDiffer = WalkDiffer{}

// StructuralDiff implements the StructuralDiffer interface
func (WalkDiffer) StructuralDiff(left, right interface{}) ([]Record, error) {
	w := &walker{}
	w.walk(nil, left, right)
	return w.records, nil
}

type walker struct {
	records []Record
}

func (w *walker) add(k Kind, p Path, left, right interface{}) {
	// paths are shared between siblings while walking, copy before keeping
	cp := make(Path, len(p))
	copy(cp, p)
	w.records = append(w.records, Record{Kind: k, Path: cp, Left: left, Right: right})
}

// walk compares a & b found at path p
func (w *walker) walk(p Path, a, b interface{}) {
	ma, aIsRec := asRecord(a)
	mb, bIsRec := asRecord(b)
	if aIsRec && bIsRec {
		w.walkRecords(p, ma, mb)
		return
	}

	sa, aIsArr := asArray(a)
	sb, bIsArr := asArray(b)
	if aIsArr && bIsArr {
		w.walkArrays(p, sa, sb)
		return
	}

	if ta, ok := asTime(a); ok {
		if tb, ok := asTime(b); ok {
			if !ta.Equal(tb) {
				w.add(KindEdit, p, a, b)
			}
			return
		}
	}

	if aIsRec || bIsRec || aIsArr || bIsArr || !reflect.DeepEqual(a, b) {
		w.add(KindEdit, p, a, b)
	}
}

func (w *walker) walkRecords(p Path, a, b map[string]interface{}) {
	for _, key := range sortedKeys(a) {
		bv, ok := b[key]
		if !ok {
			w.add(KindDeleted, append(p, key), a[key], Undefined)
			continue
		}
		w.walk(append(p, key), a[key], bv)
	}
	for _, key := range sortedKeys(b) {
		if _, ok := a[key]; !ok {
			w.add(KindNew, append(p, key), Undefined, b[key])
		}
	}
}

func (w *walker) walkArrays(p Path, a, b []interface{}) {
	common := len(a)
	if len(b) < common {
		common = len(b)
	}
	for i := 0; i < common; i++ {
		w.walk(append(p, strconv.Itoa(i)), a[i], b[i])
	}
	for i := common; i < len(a); i++ {
		w.add(KindArrayEdit, append(p, strconv.Itoa(i)), a[i], Undefined)
	}
	for i := common; i < len(b); i++ {
		w.add(KindArrayEdit, append(p, strconv.Itoa(i)), Undefined, b[i])
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asRecord returns v as a generic record if it's a map with string keys
func asRecord(v interface{}) (map[string]interface{}, bool) {
	switch x := v.(type) {
	case map[string]interface{}:
		return x, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asArray returns v as a generic array if it's a slice or array. byte slices
// are treated as scalars
func asArray(v interface{}) ([]interface{}, bool) {
	switch x := v.(type) {
	case []interface{}:
		return x, true
	case []byte, nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	s := make([]interface{}, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}
