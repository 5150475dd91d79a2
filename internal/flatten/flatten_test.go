package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNestedObject(t *testing.T) {
	v := map[string]any{
		"name": "John Doe",
		"age":  30.0,
		"address": map[string]any{
			"street":  "123 Main St",
			"city":    "Anytown",
			"country": "USA",
		},
	}

	flat, keys := Flatten(v)

	assert.Equal(t, []string{"address.city", "address.country", "address.street", "age", "name"}, keys)
	assert.Equal(t, "Anytown", flat["address.city"])
	assert.Equal(t, 30.0, flat["age"])
	assert.Len(t, flat, 5)
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	v := map[string]any{
		"name": "John Doe",
		"age":  30.0,
		"address": map[string]any{
			"street": "123 Main St",
			"city":   "Anytown",
			"geo": map[string]any{
				"lat": 12.5,
				"lon": -3.25,
			},
		},
		"active": true,
		"note":   nil,
	}

	flat, _ := Flatten(v)
	back := Unflatten(flat)

	assert.Equal(t, v, back)
}

func TestFlattenArraysAreLeaves(t *testing.T) {
	v := map[string]any{
		"tags": []any{"a", "b"},
		"nested": map[string]any{
			"items": []any{1.0, map[string]any{"x": 2.0}},
		},
	}

	flat, keys := Flatten(v)

	assert.Equal(t, []string{"nested.items", "tags"}, keys)
	assert.Equal(t, []any{"a", "b"}, flat["tags"])

	back := Unflatten(flat)
	assert.Equal(t, v, back)
}

func TestFlattenScalarRoot(t *testing.T) {
	flat, keys := Flatten("hello")

	require.Equal(t, []string{""}, keys)
	assert.Equal(t, "hello", flat[""])
	assert.Equal(t, "hello", Unflatten(flat))
}

func TestFlattenEmptyObject(t *testing.T) {
	flat, keys := Flatten(map[string]any{})

	assert.Empty(t, flat)
	assert.Empty(t, keys)
	assert.Equal(t, map[string]any{}, Unflatten(flat))
}

func TestUnflattenPathCollisionIsDeterministic(t *testing.T) {
	// "a" sorts before "a.b", so the scalar at "a" is replaced by an object.
	flat := map[string]any{
		"a":   "scalar",
		"a.b": "leaf",
	}

	got := Unflatten(flat)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": "leaf"}}, got)
}

func TestInsertCreatesIntermediateObjects(t *testing.T) {
	dst := make(map[string]any)
	Insert(dst, "location.city", "New York")
	Insert(dst, "location.country", nil)
	Insert(dst, "full_name", "John Doe")

	assert.Equal(t, map[string]any{
		"full_name": "John Doe",
		"location": map[string]any{
			"city":    "New York",
			"country": nil,
		},
	}, dst)
}

func TestCloneIsDeep(t *testing.T) {
	orig := map[string]any{"a": map[string]any{"b": []any{1.0}}}
	cp := Clone(orig).(map[string]any)

	cp["a"].(map[string]any)["b"].([]any)[0] = 2.0
	assert.Equal(t, 1.0, orig["a"].(map[string]any)["b"].([]any)[0])
}
