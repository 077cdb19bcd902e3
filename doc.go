// Package annotgo converts between plain records and flat typed
// annotations.
//
// A record is a field-name → value mapping; an annotation collection
// is the pair of sequences (string-valued, numeric-valued) that an
// annotation-indexed storage system can persist and query. The
// interesting part is the round-trip policy: deciding, per field or
// list, whether it is numeric, boolean or opaque string, and
// reconstructing the original shape deterministically.
//
// # Scalar fields
//
//	rec := annotgo.Record{"name": "Ada", "age": 36, "active": true}
//	c := annotgo.EncodeScalars(rec)
//	// c.Strings:  [{name Ada} {active true}], c.Numerics: [{age 36}]
//
//	back := annotgo.DecodeScalars(c)
//	// back: Record{"name": "Ada", "age": 36.0, "active": true}
//
// # List fields
//
//	c := annotgo.EncodeLists(annotgo.Record{"scores": []int{100, 1, 50}})
//	// c.Strings: [{scores "1,100,50"}]
//
//	back := annotgo.DecodeLists(c)
//	// back: Record{"scores": []float64{1, 50, 100}}
//
// Element type is inferred at decode time by an ordered classifier:
// all-numeric, then all-boolean, then string. Sorting and boolean
// coercion default to on; disable them with WithSort(false) and
// WithBoolConversion(false).
//
// # Payload packaging
//
// When full fidelity matters (nested structures), pack the whole
// record as an opaque JSON payload and promote only selected fields
// to annotations:
//
//	p, _ := annotgo.Pack(rec, []string{"name", "age"})
//	back, err := annotgo.Unpack(p.Body)
//
// Unpack fails with *ErrMalformedPayload when the payload is not
// valid JSON.
//
// # Guarantees
//
//   - All operations are pure: inputs are never mutated and every
//     sort works on a defensive copy. Safe for concurrent use.
//   - Encoding is deterministic: fields are emitted in ascending key
//     order and the default string ordering is byte-wise
//     lexicographic, independent of locale and environment.
//   - Boolean detection is strict: only the literal strings "true"
//     and "false" coerce. Any other non-empty string stays a string.
//   - Nested objects degrade to their default string form on the
//     typed paths; use Pack/Unpack to preserve them.
//
// # Subpackages
//
//   - codec: pluggable JSON serialization for the payload path
package annotgo
