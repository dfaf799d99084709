// Package extract maps arbitrary spreadsheet rows onto the Lead schema.
package extract

import (
	"log"
	"strings"

	"leadflow/internal/models"
	"leadflow/internal/phone"
)

// fieldAliases is the static table mapping each standard lead attribute to
// the column headers the ad platforms and agencies use for it. Headers are
// compared lowercased and trimmed. Order matters: the first attribute whose
// alias matches a header wins.
var fieldAliases = []struct {
	attr    string
	aliases []string
}{
	{"phone_number", []string{"phone_number", "phone number", "phone", "mobile", "mobile_number", "contact_number", "contact"}},
	{"salary_bracket", []string{"salary_bracket", "salary bracket", "salary", "monthly_salary", "monthly salary", "income"}},
	{"ad_id", []string{"ad_id", "ad id", "adid", "campaign_id", "campaign id", "ad_name"}},
	{"platform", []string{"platform", "source", "lead_source", "lead source"}},
	{"created_time", []string{"created_time", "created time", "created_at", "date", "lead_date"}},
	{"first_name", []string{"first_name", "first name", "firstname", "name", "full_name", "full name"}},
	{"last_name", []string{"last_name", "last name", "lastname", "surname"}},
	{"tax_id", []string{"tax_id", "tax id", "pan", "pan_number", "pan number", "pan_card"}},
	{"email", []string{"email", "email_id", "email id", "e-mail", "email_address"}},
	{"age", []string{"age"}},
	{"gender", []string{"gender", "sex"}},
	{"city", []string{"city", "current_city", "current city"}},
	{"state", []string{"state"}},
	{"pincode", []string{"pincode", "pin_code", "pin code", "zip", "postal_code"}},
	{"occupation", []string{"occupation", "profession", "employment_type", "employment type"}},
	{"employer", []string{"employer", "company", "company_name", "company name", "organisation"}},
	{"loan_amount", []string{"loan_amount", "loan amount", "required_loan_amount", "desired_loan_amount"}},
	{"loan_purpose", []string{"loan_purpose", "loan purpose", "purpose"}},
}

// aliasToAttr is derived from fieldAliases at startup. A duplicate alias in
// the table is a configuration error, not a runtime condition.
var aliasToAttr = func() map[string]string {
	m := make(map[string]string)
	for _, f := range fieldAliases {
		for _, a := range f.aliases {
			if prev, ok := m[a]; ok {
				log.Fatalf("[extract] alias %q mapped to both %q and %q", a, prev, f.attr)
			}
			m[a] = f.attr
		}
	}
	return m
}()

// FromRow builds a Lead from one spreadsheet row. Headers that match no
// alias land verbatim (trimmed) in AdditionalData under the original header
// text. Empty and whitespace-only cells are skipped. Pure transform: the
// input row is not modified and no store is touched.
func FromRow(row map[string]string, rowNum int) *models.Lead {
	lead := &models.Lead{
		RowNumber:      rowNum,
		AdditionalData: models.StringMap{},
	}
	for header, cell := range row {
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}
		attr, ok := aliasToAttr[strings.ToLower(strings.TrimSpace(header))]
		if !ok {
			lead.AdditionalData[header] = value
			continue
		}
		assign(lead, attr, value)
	}
	lead.SalaryValue = models.SalaryMidpoint(lead.SalaryBracket)
	return lead
}

func assign(lead *models.Lead, attr, value string) {
	switch attr {
	case "phone_number":
		// digits only; the country-code rule is applied later, at match time
		lead.PhoneNumber = phone.Digits(value)
	case "salary_bracket":
		lead.SalaryBracket = value
	case "ad_id":
		lead.AdID = value
	case "platform":
		lead.Platform = value
	case "created_time":
		lead.SourceCreatedAt = value
	case "first_name":
		lead.FirstName = value
	case "last_name":
		lead.LastName = value
	case "tax_id":
		lead.TaxID = strings.ToUpper(value)
	case "email":
		lead.Email = value
	case "age":
		lead.Age = value
	case "gender":
		lead.Gender = value
	case "city":
		lead.City = value
	case "state":
		lead.State = value
	case "pincode":
		lead.Pincode = value
	case "occupation":
		lead.Occupation = value
	case "employer":
		lead.Employer = value
	case "loan_amount":
		lead.LoanAmount = value
	case "loan_purpose":
		lead.LoanPurpose = value
	}
}
