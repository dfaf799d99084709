package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"919034955557", "9034955557", true},
		{"09034955557", "9034955557", true},
		{"9034955557", "9034955557", true},
		{"91-903-495-5557", "9034955557", true},
		{"+91 9034 955 557", "9034955557", true},
		{"12345", "", false},
		{"", "", false},
		{"abcdef", "", false},
		{"00000000000000", "", false},
		// 12 digits not starting with 91 has no canonical form
		{"129034955557", "", false},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		assert.Equal(t, c.valid, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"919034955557", "09034955557", "9876543210"}
	for _, in := range inputs {
		once, ok := Normalize(in)
		assert.True(t, ok)
		twice, ok := Normalize(once)
		assert.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919034955557", Digits("91-903-495-5557"))
	assert.Equal(t, "", Digits("n/a"))
}
