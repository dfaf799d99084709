// Package phone reduces raw phone strings to the canonical 10-digit form
// used as the join key for cross-store matching.
package phone

import "strings"

// Digits strips everything except ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the canonical 10-digit form of a raw phone string.
// Non-digits are stripped, a leading "91" country code on 12-digit numbers
// is dropped, then leading zeros are removed. ok is false when no canonical
// form exists. Pure and total: never panics, any input is accepted.
func Normalize(raw string) (string, bool) {
	d := Digits(raw)
	if len(d) == 12 && strings.HasPrefix(d, "91") {
		d = d[2:]
	}
	d = strings.TrimLeft(d, "0")
	if len(d) != 10 {
		return "", false
	}
	return d, true
}
