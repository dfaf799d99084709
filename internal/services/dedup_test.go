package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadflow/internal/models"
)

func TestCheckPhoneDuplicate(t *testing.T) {
	store := &fakeLeadStore{leads: []*models.Lead{
		{ID: "orig-1", PhoneNumber: "9034955557"},
	}}
	checker := NewDuplicateChecker(store)

	res := checker.Check(&models.Lead{PhoneNumber: "9034955557"})
	assert.True(t, res.IsDuplicate)
	assert.Equal(t, "Phone number already exists", res.Reason)
	assert.Equal(t, "orig-1", res.OriginalLeadID)
}

func TestCheckOrderPhoneBeforeTaxID(t *testing.T) {
	store := &fakeLeadStore{leads: []*models.Lead{
		{ID: "by-phone", PhoneNumber: "9034955557"},
		{ID: "by-pan", PhoneNumber: "1111111111", TaxID: "ABCDE1234F"},
	}}
	checker := NewDuplicateChecker(store)

	res := checker.Check(&models.Lead{PhoneNumber: "9034955557", TaxID: "ABCDE1234F"})
	assert.Equal(t, "Phone number already exists", res.Reason)
	assert.Equal(t, "by-phone", res.OriginalLeadID)
}

func TestCheckTaxIDAndEmail(t *testing.T) {
	store := &fakeLeadStore{leads: []*models.Lead{
		{ID: "a", PhoneNumber: "1111111111", TaxID: "ABCDE1234F", Email: "x@example.com"},
	}}
	checker := NewDuplicateChecker(store)

	res := checker.Check(&models.Lead{PhoneNumber: "2222222222", TaxID: "ABCDE1234F"})
	assert.Equal(t, "Tax ID already exists", res.Reason)

	res = checker.Check(&models.Lead{PhoneNumber: "2222222222", Email: "x@example.com"})
	assert.Equal(t, "Email already exists", res.Reason)

	// no tax id / email on the candidate: those checks are skipped
	res = checker.Check(&models.Lead{PhoneNumber: "2222222222"})
	assert.False(t, res.IsDuplicate)
}

func TestCheckDegradesOnStoreError(t *testing.T) {
	store := &fakeLeadStore{findErr: errStoreDown}
	checker := NewDuplicateChecker(store)

	res := checker.Check(&models.Lead{PhoneNumber: "9034955557"})
	assert.False(t, res.IsDuplicate)
	assert.Empty(t, res.Reason)
}
