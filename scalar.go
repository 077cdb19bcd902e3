package annotgo

// EncodeScalars converts the scalar fields of a record into an
// annotation collection.
//
// Number-valued fields (any Go numeric type, NaN excepted) land in the
// numeric sequence; every other field is converted to its canonical
// string form and lands in the string sequence. The reserved EntityKey
// field is always excluded regardless of its value.
//
// Fields are emitted in ascending key order. The input record is never
// mutated. Every non-reserved field maps to exactly one annotation;
// the operation cannot fail.
func EncodeScalars(rec Record) Collection {
	var c Collection
	for _, k := range sortedKeys(rec) {
		if k == EntityKey {
			continue
		}
		if f, ok := numericValue(rec[k]); ok {
			c.Numerics = append(c.Numerics, NumericAnnotation{Key: k, Value: f})
			continue
		}
		c.Strings = append(c.Strings, StringAnnotation{Key: k, Value: canonicalString(rec[k])})
	}
	return c
}

// DecodeScalars converts an annotation collection back into a record
// of scalar fields.
//
// Numeric annotations decode unchanged. String annotations decode
// as-is, except that with bool conversion on (the default) the literal
// values "true" and "false" decode to bools. The comparison is strict:
// no other string, empty or not, coerces to a bool.
//
// A key present in both sequences is a caller error; the numeric value
// wins because the numeric sequence is applied last.
func DecodeScalars(c Collection, optFns ...Option) Record {
	o := applyOptions(optFns)

	rec := make(Record, c.Len())
	for _, a := range c.Strings {
		if o.convertBools {
			switch a.Value {
			case "true":
				rec[a.Key] = true
				continue
			case "false":
				rec[a.Key] = false
				continue
			}
		}
		rec[a.Key] = a.Value
	}
	for _, a := range c.Numerics {
		rec[a.Key] = a.Value
	}
	return rec
}
