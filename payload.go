package annotgo

import "fmt"

// Payload couples the full-fidelity serialized form of a record with
// the subset of its fields promoted to indexable annotations.
//
// The body preserves arbitrary nesting; the annotations are what the
// storage backend can index. Unpack restores the record from the body
// alone.
type Payload struct {
	Body        []byte
	Annotations Collection
}

// Pack serializes the entire record through the configured codec and
// promotes each field named in indexKeys to an annotation using the
// scalar classification rule: numbers (NaN excepted) become numeric
// annotations, everything else its canonical string form.
//
// Names in indexKeys that are not fields of the record are silently
// skipped. Annotation order follows indexKeys order. The input record
// is never mutated.
//
// Pack fails only when the codec cannot marshal the record, i.e. the
// record holds a value with no JSON representation.
func Pack(rec Record, indexKeys []string, optFns ...Option) (Payload, error) {
	o := applyOptions(optFns)

	body, err := o.codec.Marshal(rec)
	if err != nil {
		return Payload{}, fmt.Errorf("pack record: %w", err)
	}

	var c Collection
	for _, k := range indexKeys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		if f, ok := numericValue(v); ok {
			c.Numerics = append(c.Numerics, NumericAnnotation{Key: k, Value: f})
			continue
		}
		c.Strings = append(c.Strings, StringAnnotation{Key: k, Value: canonicalString(v)})
	}

	return Payload{Body: body, Annotations: c}, nil
}

// Unpack parses payload bytes back into a record.
//
// Invalid JSON surfaces as *ErrMalformedPayload; the underlying codec
// error remains reachable via errors.Unwrap. No other failure kind
// exists on this path.
func Unpack(payload []byte, optFns ...Option) (Record, error) {
	o := applyOptions(optFns)

	var rec Record
	if err := o.codec.Unmarshal(payload, &rec); err != nil {
		return nil, &ErrMalformedPayload{cause: err}
	}
	return rec, nil
}
