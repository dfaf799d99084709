package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryMidpoint(t *testing.T) {
	assert.Equal(t, 30000.0, SalaryMidpoint("25000-35000"))
	assert.Equal(t, 30000.0, SalaryMidpoint("  25000 - 35000 "))
	assert.Equal(t, 125000.0, SalaryMidpoint("Above_100000"))
	assert.Equal(t, 0.0, SalaryMidpoint("not a bracket"))
	assert.Equal(t, 0.0, SalaryMidpoint(""))
}

func TestStringMapRoundTrip(t *testing.T) {
	m := StringMap{"referrer_url": "https://x", "utm_medium": "cpc"}
	v, err := m.Value()
	require.NoError(t, err)

	var got StringMap
	require.NoError(t, got.Scan(v))
	assert.Equal(t, m, got)

	var empty StringMap
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
