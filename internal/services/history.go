package services

import (
	"fmt"

	"leadflow/internal/models"
)

// HistoryService manages the upload-batch audit records.
type HistoryService struct {
	Batches BatchHistoryStore
	Leads   LeadPurger
}

func NewHistoryService(batches BatchHistoryStore, leads LeadPurger) *HistoryService {
	return &HistoryService{Batches: batches, Leads: leads}
}

func (s *HistoryService) List(limit, offset int) ([]*models.UploadBatch, error) {
	return s.Batches.ListPaginated(limit, offset)
}

func (s *HistoryService) GetByID(id int64) (*models.UploadBatch, error) {
	return s.Batches.GetByID(id)
}

func (s *HistoryService) Update(id int64, uploadedBy string, budget float64) (*models.UploadBatch, error) {
	batch, err := s.Batches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, fmt.Errorf("upload batch %d not found", id)
	}
	if uploadedBy == "" {
		uploadedBy = batch.UploadedBy
	}
	if err := s.Batches.Update(id, uploadedBy, budget); err != nil {
		return nil, err
	}
	return s.Batches.GetByID(id)
}

// Delete removes the batch and every lead referencing it, returning the
// number of leads actually removed.
func (s *HistoryService) Delete(id int64) (int64, error) {
	batch, err := s.Batches.GetByID(id)
	if err != nil {
		return 0, err
	}
	if batch == nil {
		return 0, fmt.Errorf("upload batch %d not found", id)
	}
	deleted, err := s.Leads.DeleteByBatch(id)
	if err != nil {
		return 0, err
	}
	if err := s.Batches.Delete(id); err != nil {
		return deleted, err
	}
	return deleted, nil
}
