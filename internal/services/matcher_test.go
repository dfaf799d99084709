package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchReturnsOriginalRepresentation(t *testing.T) {
	customers := &fakeCustomerStore{mobiles: []string{"9034955557"}}
	m := NewMatcher(customers)

	matched := m.Match([]string{"919034955557"})
	assert.True(t, matched["919034955557"])
	assert.Len(t, matched, 1)
}

func TestMatchNormalizesBothSides(t *testing.T) {
	customers := &fakeCustomerStore{mobiles: []string{"919812345670", "08887776665"}}
	m := NewMatcher(customers)

	matched := m.Match([]string{"09812345670", "8887776665", "1234567890"})
	assert.True(t, matched["09812345670"])
	assert.True(t, matched["8887776665"])
	assert.False(t, matched["1234567890"])
}

func TestMatchSkipsStoreWhenNothingNormalizes(t *testing.T) {
	customers := &fakeCustomerStore{mobiles: []string{"9034955557"}}
	m := NewMatcher(customers)

	matched := m.Match([]string{"12345", ""})
	assert.Empty(t, matched)
	assert.Equal(t, 0, customers.calls)
}

func TestMatchEmptyOnStoreError(t *testing.T) {
	customers := &fakeCustomerStore{err: errStoreDown}
	m := NewMatcher(customers)

	matched := m.Match([]string{"9034955557"})
	assert.Empty(t, matched)
}
