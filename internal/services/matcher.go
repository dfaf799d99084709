package services

import (
	"log"

	"leadflow/internal/phone"
)

// Matcher batch-compares lead phone numbers against the external customer
// table. Both sides are normalized to the canonical 10-digit form in memory
// and intersected; a query-time WHERE IN on the raw values would under-match
// because the two stores disagree on phone formats. Callers pass all rows of
// one upload in a single call to bound the number of full-table reads.
type Matcher struct {
	customers CustomerStore
}

func NewMatcher(customers CustomerStore) *Matcher {
	return &Matcher{customers: customers}
}

// Match returns the subset of the original (non-normalized) input phone
// numbers that have a canonical-form match in the customer table. An
// unreachable customer store yields an empty match set rather than an
// error: matching is best-effort and must not abort ingestion.
func (m *Matcher) Match(rawPhones []string) map[string]bool {
	matched := map[string]bool{}

	// canonical form -> every original representation seen in the input
	originals := map[string][]string{}
	for _, raw := range rawPhones {
		canon, ok := phone.Normalize(raw)
		if !ok {
			continue
		}
		originals[canon] = append(originals[canon], raw)
	}
	if len(originals) == 0 {
		return matched
	}

	mobiles, err := m.customers.AllMobileNumbers()
	if err != nil {
		log.Printf("[matcher] customer store unreachable, returning empty match set: %v", err)
		return matched
	}

	external := make(map[string]bool, len(mobiles))
	for _, mob := range mobiles {
		if canon, ok := phone.Normalize(mob); ok {
			external[canon] = true
		}
	}

	for canon, raws := range originals {
		if !external[canon] {
			continue
		}
		for _, raw := range raws {
			matched[raw] = true
		}
	}
	return matched
}
