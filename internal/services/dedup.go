package services

import (
	"log"

	"leadflow/internal/models"
)

type DuplicateResult struct {
	IsDuplicate    bool   `json:"is_duplicate"`
	Reason         string `json:"reason,omitempty"`
	OriginalLeadID string `json:"original_lead_id,omitempty"`
}

// DuplicateChecker checks a freshly extracted lead against already stored
// leads. Checks run in a fixed order and short-circuit on the first hit:
// phone, then tax id when present, then email when present.
type DuplicateChecker struct {
	leads LeadStore
}

func NewDuplicateChecker(leads LeadStore) *DuplicateChecker {
	return &DuplicateChecker{leads: leads}
}

// Check never fails the caller: duplicate detection is a quality signal,
// not a correctness gate, so a store error degrades to "not a duplicate".
func (d *DuplicateChecker) Check(lead *models.Lead) DuplicateResult {
	if lead.PhoneNumber != "" {
		existing, err := d.leads.FindByPhone(lead.PhoneNumber)
		if err != nil {
			log.Printf("[dedup][phone] lookup failed, treating as non-duplicate: %v", err)
			return DuplicateResult{}
		}
		if existing != nil {
			return DuplicateResult{IsDuplicate: true, Reason: "Phone number already exists", OriginalLeadID: existing.ID}
		}
	}
	if lead.TaxID != "" {
		existing, err := d.leads.FindByTaxID(lead.TaxID)
		if err != nil {
			log.Printf("[dedup][tax_id] lookup failed, treating as non-duplicate: %v", err)
			return DuplicateResult{}
		}
		if existing != nil {
			return DuplicateResult{IsDuplicate: true, Reason: "Tax ID already exists", OriginalLeadID: existing.ID}
		}
	}
	if lead.Email != "" {
		existing, err := d.leads.FindByEmail(lead.Email)
		if err != nil {
			log.Printf("[dedup][email] lookup failed, treating as non-duplicate: %v", err)
			return DuplicateResult{}
		}
		if existing != nil {
			return DuplicateResult{IsDuplicate: true, Reason: "Email already exists", OriginalLeadID: existing.ID}
		}
	}
	return DuplicateResult{}
}
