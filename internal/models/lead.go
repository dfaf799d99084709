package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringMap stores the unmapped spreadsheet columns of a lead as a JSONB
// column, key = original column header, value = trimmed cell text.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(src interface{}) error {
	if src == nil {
		*m = StringMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringMap: %T", src)
	}
	if len(b) == 0 {
		*m = StringMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

type Lead struct {
	ID        string `json:"id"`
	BatchID   int64  `json:"batch_id"`
	RowNumber int    `json:"row_number"`

	PhoneNumber     string `json:"phone_number"`
	SalaryBracket   string `json:"salary_bracket"`
	AdID            string `json:"ad_id"`
	Platform        string `json:"platform"`
	SourceCreatedAt string `json:"source_created_at"` // kept as supplied by the export, not parsed

	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
	Email       string `json:"email,omitempty"`
	Age         string `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	Employer    string `json:"employer,omitempty"`
	LoanAmount  string `json:"loan_amount,omitempty"`
	LoanPurpose string `json:"loan_purpose,omitempty"`

	AdditionalData StringMap `json:"additional_data,omitempty"`

	IsDuplicate     bool   `json:"is_duplicate"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
	OriginalLeadID  string `json:"original_lead_id,omitempty"`

	Matched   bool       `json:"matched_in_customer_profile"`
	MatchedAt *time.Time `json:"matched_at,omitempty"`

	QualityLead bool    `json:"quality_lead"`
	SalaryValue float64 `json:"salary_value"`

	CreatedAt time.Time `json:"created_at"`
}

// salaryMidpoints maps the salary brackets the ad platforms send to the
// midpoint value used for quality scoring and reporting. Bracket text from
// the exports is matched after lowercasing and trimming.
var salaryMidpoints = map[string]float64{
	"below_15000":  7500,
	"15000-25000":  20000,
	"25000-35000":  30000,
	"35000-50000":  42500,
	"50000-75000":  62500,
	"75000-100000": 87500,
	"above_100000": 125000,
}

// SalaryMidpoint returns the midpoint for a bracket, or 0 when the bracket
// text is not one of the known keys.
func SalaryMidpoint(bracket string) float64 {
	key := strings.ToLower(strings.TrimSpace(bracket))
	key = strings.ReplaceAll(key, " ", "")
	return salaryMidpoints[key]
}
