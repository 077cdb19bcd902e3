package annotgo

import (
	"fmt"
	"math"
	"maps"
	"slices"
	"strconv"
)

// EntityKey is the reserved record field carrying the storage system's
// entity identifier. EncodeScalars never emits it as an annotation.
const EntityKey = "entityKey"

// Record is a plain field-name → value mapping, the human-facing data
// shape before and after annotation conversion.
//
// Values on the typed paths are strings, bools, Go numbers, or slices
// of those. Anything else degrades to its default string form rather
// than failing; the transforms are total over JSON-like input.
type Record map[string]any

// StringAnnotation is a single string-valued key/value pair.
type StringAnnotation struct {
	Key   string
	Value string
}

// NumericAnnotation is a single numeric-valued key/value pair.
type NumericAnnotation struct {
	Key   string
	Value float64
}

// Collection holds the two parallel annotation sequences derived from
// one record. The storage backend consuming it accepts only string-
// and numeric-valued keyed annotations, so every record field lands in
// exactly one of the two sequences.
//
// Keys are not required to be unique across both sequences, but they
// typically are since they originate from record field names. Decoding
// a collection with a key present in both sequences is undefined; see
// DecodeScalars.
type Collection struct {
	Strings  []StringAnnotation
	Numerics []NumericAnnotation
}

// Len returns the total number of annotations across both sequences.
func (c Collection) Len() int {
	return len(c.Strings) + len(c.Numerics)
}

// Keys returns all annotation keys, string sequence first.
func (c Collection) Keys() []string {
	keys := make([]string, 0, c.Len())
	for _, a := range c.Strings {
		keys = append(keys, a.Key)
	}
	for _, a := range c.Numerics {
		keys = append(keys, a.Key)
	}
	return keys
}

// Clone creates a deep copy of the record.
//
// This is the safe default to prevent mutation sharing between caller
// and callee. Slice values of the supported element types are copied;
// scalar values are copied by value semantics.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}

	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []any:
		return slices.Clone(x)
	case []string:
		return slices.Clone(x)
	case []float64:
		return slices.Clone(x)
	case []int:
		return slices.Clone(x)
	case []bool:
		return slices.Clone(x)
	default:
		return v
	}
}

// sortedKeys renders "record iteration order" deterministically.
// Go maps have no insertion order, so encoders emit ascending key order.
func sortedKeys(r Record) []string {
	return slices.Sorted(maps.Keys(r))
}

// numericValue reports whether v is a number for annotation purposes
// and returns it widened to float64.
//
// Every Go int/uint/float flavor counts. NaN does not: a NaN field
// degrades to its string form so the numeric sequence stays ordered
// and comparable. ±Inf is a number and stays numeric.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float32:
		if math.IsNaN(float64(x)) {
			return 0, false
		}
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// canonicalString converts a value to its canonical string form:
// nil → "null", bools → "true"/"false", numbers via shortest
// round-trippable decimal, everything else via default stringification.
func canonicalString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		if f, ok := numericValue(v); ok {
			return formatNumber(f)
		}
		// NaN and non-scalar values both end up here; %v renders NaN as
		// "NaN" and everything else in its default string form.
		return fmt.Sprintf("%v", x)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
