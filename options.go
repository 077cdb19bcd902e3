package annotgo

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hupe1980/annotgo/codec"
)

type options struct {
	sort         bool
	convertBools bool
	codec        codec.Codec
	collator     *collate.Collator
}

// Option configures encode/decode behavior.
//
// Options exist to keep the API surface small: every transform takes
// the same option set and ignores the knobs it does not use.
type Option func(*options)

func applyOptions(optFns []Option) options {
	o := options{
		sort:         true,
		convertBools: true,
		codec:        codec.Default,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithSort toggles element sorting on the list transforms.
//
// Defaults to true. Disable it on both encode and decode to round-trip
// element order unchanged.
func WithSort(sort bool) Option {
	return func(o *options) {
		o.sort = sort
	}
}

// WithBoolConversion toggles boolean coercion on the decode paths.
//
// Defaults to true. Only the literal strings "true" and "false" ever
// coerce; with conversion off they decode as strings.
func WithBoolConversion(convert bool) Option {
	return func(o *options) {
		o.convertBools = convert
	}
}

// WithCodec configures the codec used by Pack and Unpack.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCollator switches string ordering from the default byte-wise
// lexicographic comparison to locale-aware collation for the given
// language tag.
//
// The byte-wise default is the deterministic, environment-independent
// ordering; opt into a collator only when a downstream consumer
// requires locale semantics. Numeric and boolean lists are unaffected.
func WithCollator(tag language.Tag) Option {
	return func(o *options) {
		o.collator = collate.New(tag)
	}
}

// sortStrings orders items in place with the configured ordering.
func (o options) sortStrings(items []string) {
	if o.collator != nil {
		o.collator.SortStrings(items)
		return
	}
	sort.Strings(items)
}
