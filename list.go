package annotgo

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// listSeparator joins and splits flattened list elements.
const listSeparator = ","

// ListKind tags the element type a decoded list was classified as.
type ListKind uint8

const (
	// ListString keeps elements as trimmed strings.
	ListString ListKind = iota
	// ListNumeric parses every element as a finite decimal number.
	ListNumeric
	// ListBool parses every element as a boolean.
	ListBool
)

// String returns the string representation of the ListKind.
func (k ListKind) String() string {
	switch k {
	case ListString:
		return "String"
	case ListNumeric:
		return "Numeric"
	case ListBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// ClassifyItems applies the ordered type inference over a list of
// string items and returns the kind the whole list decodes as:
//
//  1. ListNumeric if every item parses as a finite decimal number;
//  2. ListBool if convertBools is set and every item is exactly
//     "true" or "false";
//  3. ListString otherwise.
//
// Lists of zero or one item classify by the same rules, so a lone
// numeric-looking item yields a one-element numeric list.
func ClassifyItems(items []string, convertBools bool) ListKind {
	if allNumeric(items) {
		return ListNumeric
	}
	if convertBools && allBool(items) {
		return ListBool
	}
	return ListString
}

func allNumeric(items []string) bool {
	for _, s := range items {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

func allBool(items []string) bool {
	for _, s := range items {
		if s != "true" && s != "false" {
			return false
		}
	}
	return true
}

// EncodeLists converts the slice-valued fields of a record into string
// annotations, one per field. Non-slice fields are ignored, not
// errored.
//
// Each element is converted to its canonical string form and the
// elements are joined with a comma. With sorting on (the default) the
// string forms are ordered byte-wise lexicographically before joining;
// WithCollator switches to locale-aware ordering. An empty slice
// produces an empty-string annotation value.
//
// The caller's slices are never mutated: elements are stringified into
// a fresh slice before any sort. Lists never become numeric
// annotations, so the numeric sequence of the result is always empty.
func EncodeLists(rec Record, optFns ...Option) Collection {
	o := applyOptions(optFns)

	var c Collection
	for _, k := range sortedKeys(rec) {
		items, ok := stringItems(rec[k])
		if !ok {
			continue
		}
		if o.sort {
			o.sortStrings(items)
		}
		c.Strings = append(c.Strings, StringAnnotation{Key: k, Value: strings.Join(items, listSeparator)})
	}
	return c
}

// stringItems converts a slice value into the canonical string forms
// of its elements. The returned slice is freshly allocated.
func stringItems(v any) ([]string, bool) {
	switch x := v.(type) {
	case []any:
		items := make([]string, len(x))
		for i := range x {
			items[i] = canonicalString(x[i])
		}
		return items, true
	case []string:
		return slices.Clone(x), true
	case []float64:
		items := make([]string, len(x))
		for i := range x {
			items[i] = canonicalString(x[i])
		}
		return items, true
	case []int:
		items := make([]string, len(x))
		for i := range x {
			items[i] = canonicalString(x[i])
		}
		return items, true
	case []int64:
		items := make([]string, len(x))
		for i := range x {
			items[i] = canonicalString(x[i])
		}
		return items, true
	case []bool:
		items := make([]string, len(x))
		for i := range x {
			items[i] = strconv.FormatBool(x[i])
		}
		return items, true
	default:
		return nil, false
	}
}

// DecodeLists converts the string annotations of a collection back
// into a record of slice-valued fields. The numeric sequence is never
// consulted; list data is only ever carried as string annotations.
//
// Each annotation value is split on commas and every item is trimmed
// of surrounding whitespace. An empty encoded value yields a
// one-element list containing the empty string, since splitting ""
// produces one empty item. The trimmed items are then classified (see
// ClassifyItems) and decoded as a homogeneous []float64, []bool or
// []string.
//
// With sorting on, numeric lists sort ascending, bool lists sort false
// before true, and string lists sort byte-wise lexicographically (or
// by collator).
func DecodeLists(c Collection, optFns ...Option) Record {
	o := applyOptions(optFns)

	rec := make(Record, len(c.Strings))
	for _, a := range c.Strings {
		items := splitTrim(a.Value)

		switch ClassifyItems(items, o.convertBools) {
		case ListNumeric:
			nums := make([]float64, len(items))
			for i, s := range items {
				nums[i], _ = strconv.ParseFloat(s, 64)
			}
			if o.sort {
				slices.Sort(nums)
			}
			rec[a.Key] = nums
		case ListBool:
			bools := make([]bool, len(items))
			for i, s := range items {
				bools[i] = s == "true"
			}
			if o.sort {
				sort.SliceStable(bools, func(i, j int) bool {
					return !bools[i] && bools[j]
				})
			}
			rec[a.Key] = bools
		default:
			if o.sort {
				o.sortStrings(items)
			}
			rec[a.Key] = items
		}
	}
	return rec
}

func splitTrim(s string) []string {
	items := strings.Split(s, listSeparator)
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}
