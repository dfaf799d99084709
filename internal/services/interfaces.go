package services

import (
	"time"

	"leadflow/internal/models"
)

// Store interfaces kept small so the pipeline services can be exercised
// against fakes. The repositories satisfy them.

type LeadStore interface {
	Create(lead *models.Lead) error
	FindByPhone(phoneNumber string) (*models.Lead, error)
	FindByTaxID(taxID string) (*models.Lead, error)
	FindByEmail(email string) (*models.Lead, error)
	MarkMatched(id string, matchedAt time.Time) error
	ListBetween(from, to time.Time) ([]*models.Lead, error)
}

type BatchStore interface {
	Create(batch *models.UploadBatch) error
	Finalize(id int64, counts models.BatchCounts) error
}

type BatchHistoryStore interface {
	GetByID(id int64) (*models.UploadBatch, error)
	ListPaginated(limit, offset int) ([]*models.UploadBatch, error)
	Update(id int64, uploadedBy string, budget float64) error
	Delete(id int64) error
}

type LeadPurger interface {
	DeleteByBatch(batchID int64) (int64, error)
}

type CustomerStore interface {
	AllMobileNumbers() ([]string, error)
}

type CustomerAggregates interface {
	CountCustomers(from, to time.Time, adID string) (int, error)
	CountQuality(from, to time.Time, adID string, salaryThreshold float64) (int, error)
	CountDisbursed(from, to time.Time, adID string) (int, error)
	SumLoanAmounts(from, to time.Time, adID string) (float64, error)
}

type LeadAggregates interface {
	CountBetween(from, to time.Time) (int, error)
	CountMatched(from, to time.Time) (int, error)
	CountDuplicates(from, to time.Time) (int, error)
	CountQuality(from, to time.Time) (int, error)
}
