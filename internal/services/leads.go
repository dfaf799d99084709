package services

import (
	"leadflow/internal/models"
	"leadflow/internal/repositories"
)

// LeadService backs the read-only lead listing endpoints.
type LeadService struct {
	Repo *repositories.LeadRepository
}

func NewLeadService(repo *repositories.LeadRepository) *LeadService {
	return &LeadService{Repo: repo}
}

func (s *LeadService) Filter(duplicate, quality *bool, adID, sortBy, order string, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.FilterLeads(duplicate, quality, adID, sortBy, order, limit, offset)
}

func (s *LeadService) Duplicates(limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListDuplicates(limit, offset)
}

// FieldNames lists the distinct overflow column headers seen across uploads.
func (s *LeadService) FieldNames() ([]string, error) {
	return s.Repo.DistinctAdditionalFields()
}
