package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloatDriverValues(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{int64(42), 42},
		{float64(3.5), 3.5},
		{[]byte("12500.75"), 12500.75},
		{"7", 7},
	}
	for _, c := range cases {
		got, err := toFloat(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := toFloat(struct{}{})
	assert.Error(t, err)
}

func TestToLabelDriverValues(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Engineering", toLabel("Engineering"))
	assert.Equal(t, "HR", toLabel([]byte("HR")))
	assert.Equal(t, "2026-03-01T12:00:00Z", toLabel(ts))
	assert.Equal(t, "true", toLabel(true))
}
