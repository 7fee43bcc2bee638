package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/variant"
)

func TestResult_Ok(t *testing.T) {
	res := New[int, string]()

	v := res.Ok(200)
	assert.Equal(t, Ok, v.Key())
	assert.Equal(t, map[string]any{Ok: 200}, v.Unwrap())
}

func TestResult_Err(t *testing.T) {
	res := New[int, string]()

	v := res.Err("bad")
	assert.Equal(t, Err, v.Key())
	assert.Equal(t, map[string]any{Err: "bad"}, v.Unwrap())
	assert.False(t, v.Is(Ok))
}

func TestResult_Match(t *testing.T) {
	res := New[int, string]()
	handlers := variant.Handlers{
		Ok:  func(payload any) (any, error) { return payload.(int) + 1, nil },
		Err: func(payload any) (any, error) { return -1, nil },
	}

	out, err := res.Ok(1).Match(handlers)
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	out, err = res.Err("boom").Match(handlers)
	require.NoError(t, err)
	assert.Equal(t, -1, out)
}

func TestResult_Get(t *testing.T) {
	res := New[int, string]()

	got, ok := res.Get(res.Ok(7))
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = res.Get(res.Err("boom"))
	assert.False(t, ok)

	e, ok := res.GetErr(res.Err("boom"))
	assert.True(t, ok)
	assert.Equal(t, "boom", e)

	_, ok = res.GetErr(res.Ok(7))
	assert.False(t, ok)
}

func TestResult_Parse(t *testing.T) {
	res := New[int, string]()

	t.Run("round trip", func(t *testing.T) {
		v := res.Err("bad")
		back, err := res.Parse(v.Unwrap())
		require.NoError(t, err)
		assert.True(t, v.Equal(back))
	})

	t.Run("cardinality", func(t *testing.T) {
		_, err := res.Parse(map[string]any{Ok: 1, Err: "x"})
		require.ErrorIs(t, err, variant.ErrCardinality)
	})

	t.Run("undeclared key", func(t *testing.T) {
		_, err := res.Parse(map[string]any{"Some": 1})
		require.ErrorIs(t, err, variant.ErrUnknownAlternative)
	})
}

func TestResult_ParseJSON(t *testing.T) {
	res := New[float64, string]()

	v, err := res.ParseJSON([]byte(`{"Err": "timeout"}`))
	require.NoError(t, err)

	e, ok := res.GetErr(v)
	assert.True(t, ok)
	assert.Equal(t, "timeout", e)
}

func TestResult_Union(t *testing.T) {
	res := New[int, error]()

	assert.Equal(t, []string{Ok, Err}, res.Union().Alternatives())
}
