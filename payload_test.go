package annotgo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/annotgo/codec"
)

func TestPack(t *testing.T) {
	rec := Record{
		"name":   "Ada",
		"age":    36.0,
		"active": true,
		"nested": map[string]any{"city": "London", "zip": "N1"},
	}

	t.Run("Promotes index keys", func(t *testing.T) {
		p, err := Pack(rec, []string{"name", "age", "active"})
		require.NoError(t, err)

		assert.Equal(t, []StringAnnotation{
			{Key: "name", Value: "Ada"},
			{Key: "active", Value: "true"},
		}, p.Annotations.Strings)
		assert.Equal(t, []NumericAnnotation{
			{Key: "age", Value: 36},
		}, p.Annotations.Numerics)
	})

	t.Run("Annotation order follows index keys", func(t *testing.T) {
		p, err := Pack(rec, []string{"active", "name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"active", "name"}, p.Annotations.Keys())
	})

	t.Run("Missing keys skipped", func(t *testing.T) {
		p, err := Pack(rec, []string{"name", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, 1, p.Annotations.Len())
	})

	t.Run("No index keys", func(t *testing.T) {
		p, err := Pack(rec, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Annotations.Len())
		assert.NotEmpty(t, p.Body)
	})

	t.Run("Unserializable record fails", func(t *testing.T) {
		_, err := Pack(Record{"ch": make(chan int)}, nil)
		assert.Error(t, err)
	})
}

func TestUnpack(t *testing.T) {
	t.Run("Round trip preserves nesting", func(t *testing.T) {
		rec := Record{
			"name":   "Ada",
			"age":    36.0,
			"tags":   []any{"x", "y"},
			"nested": map[string]any{"city": "London", "depth": map[string]any{"a": 1.0}},
		}

		p, err := Pack(rec, []string{"name"})
		require.NoError(t, err)

		got, err := Unpack(p.Body)
		require.NoError(t, err)

		if diff := cmp.Diff(rec, got); diff != "" {
			t.Errorf("record mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Malformed payload", func(t *testing.T) {
		_, err := Unpack([]byte("not json"))
		require.Error(t, err)

		var mp *ErrMalformedPayload
		assert.True(t, errors.As(err, &mp))
		assert.Contains(t, err.Error(), "malformed payload")
		assert.Error(t, errors.Unwrap(err))
	})

	t.Run("Empty payload is malformed", func(t *testing.T) {
		_, err := Unpack(nil)

		var mp *ErrMalformedPayload
		assert.True(t, errors.As(err, &mp))
	})

	t.Run("Codec override", func(t *testing.T) {
		p, err := Pack(Record{"a": 1.0}, nil, WithCodec(codec.JSON{}))
		require.NoError(t, err)

		got, err := Unpack(p.Body, WithCodec(codec.JSON{}))
		require.NoError(t, err)
		assert.Equal(t, Record{"a": 1.0}, got)
	})
}
