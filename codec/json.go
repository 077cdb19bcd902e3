package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the most portable, lowest-dependency option. Records, maps,
// slices and typical structs all round-trip; funcs, channels and
// complex numbers do not.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used by Pack and Unpack unless overridden.
//
// Both built-in codecs emit standard JSON, so payloads written with
// one can be read with the other.
var Default Codec = GoJSON{}
