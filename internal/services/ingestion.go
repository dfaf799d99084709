package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"leadflow/internal/extract"
	"leadflow/internal/models"
)

// ErrInvalidUpload marks upload failures caused by the submitted file
// itself (wrong type, unreadable workbook, no data rows), as opposed to
// store failures on our side.
var ErrInvalidUpload = errors.New("invalid upload")

type UploadInput struct {
	FilePath    string
	FileName    string
	ContentType string
	UploadedBy  string
	Budget      float64
}

type LeadDetail struct {
	ID              string   `json:"id"`
	RowNumber       int      `json:"row_number"`
	Phone           string   `json:"phone"`
	TaxID           string   `json:"tax_id,omitempty"`
	Email           string   `json:"email,omitempty"`
	IsDuplicate     bool     `json:"is_duplicate"`
	DuplicateReason string   `json:"duplicate_reason,omitempty"`
	Matched         bool     `json:"matched_in_customer_profile"`
	ExtraFields     []string `json:"extra_fields,omitempty"`
}

type UploadSummary struct {
	BatchID        int64        `json:"batch_id"`
	TotalRows      int          `json:"total_rows"`
	ProcessedLeads int          `json:"processed_leads"`
	Duplicates     int          `json:"duplicates"`
	Errors         int          `json:"errors"`
	MatchedLeads   int          `json:"matched_leads"`
	Leads          []LeadDetail `json:"leads"`
	DuplicateLeads []LeadDetail `json:"duplicate_leads"`
	ErrorMessages  []string     `json:"error_messages"`
}

// IngestionService drives one upload end to end: parse workbook, extract
// each row, duplicate-check, batch cross-store match, persist leads plus an
// upload audit record, clean up the temporary file, produce a summary.
type IngestionService struct {
	leads   LeadStore
	batches BatchStore
	checker *DuplicateChecker
	matcher *Matcher

	// quality criteria from config
	salaryThreshold  float64
	qualityCampaigns map[string]bool

	// optional, best-effort collaborators
	mailer   *EmailService
	notifier *Notifier
}

func NewIngestionService(leads LeadStore, batches BatchStore, checker *DuplicateChecker, matcher *Matcher, salaryThreshold float64, qualityCampaigns []string) *IngestionService {
	campaigns := map[string]bool{}
	for _, c := range qualityCampaigns {
		campaigns[c] = true
	}
	return &IngestionService{
		leads:            leads,
		batches:          batches,
		checker:          checker,
		matcher:          matcher,
		salaryThreshold:  salaryThreshold,
		qualityCampaigns: campaigns,
	}
}

func (s *IngestionService) SetMailer(mailer *EmailService) { s.mailer = mailer }
func (s *IngestionService) SetNotifier(notifier *Notifier) { s.notifier = notifier }

// ProcessUpload runs the ingestion state machine. File-level problems abort
// before any persistence; row-level problems degrade to error strings. The
// temporary file is removed on every exit path.
func (s *IngestionService) ProcessUpload(in UploadInput) (*UploadSummary, error) {
	defer func() {
		if err := os.Remove(in.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("[ingest][cleanup] remove %s: %v", in.FilePath, err)
		}
	}()

	// received
	if !LooksLikeSpreadsheet(in.FileName, in.ContentType) {
		return nil, fmt.Errorf("%w: unsupported file type: %s", ErrInvalidUpload, in.FileName)
	}

	// parsed
	rows, err := parseWorkbook(in.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	uploadedBy := in.UploadedBy
	if uploadedBy == "" {
		uploadedBy = "unknown"
	}
	batch := &models.UploadBatch{
		FileName:   in.FileName,
		UploadedAt: time.Now(),
		UploadedBy: uploadedBy,
		Budget:     in.Budget,
	}
	// the batch exists before the row loop so leads can back-reference it
	// even when later steps partially fail
	if err := s.batches.Create(batch); err != nil {
		return nil, fmt.Errorf("create upload batch: %w", err)
	}
	log.Printf("[ingest][batch=%d] %s: %d rows", batch.ID, in.FileName, len(rows))

	summary := &UploadSummary{
		BatchID:        batch.ID,
		TotalRows:      len(rows),
		Leads:          []LeadDetail{},
		DuplicateLeads: []LeadDetail{},
		ErrorMessages:  []string{},
	}

	// extracting: row numbers come from the sheet itself, so leads keep
	// their true provenance even when empty rows were skipped
	var pending []*models.Lead
	for _, row := range rows {
		lead := extract.FromRow(row.cells, row.num)
		if len(lead.PhoneNumber) < 10 {
			summary.ErrorMessages = append(summary.ErrorMessages,
				fmt.Sprintf("row %d: missing or invalid phone number %q", row.num, lead.PhoneNumber))
			continue
		}

		dup := s.checker.Check(lead)
		lead.IsDuplicate = dup.IsDuplicate
		lead.DuplicateReason = dup.Reason
		lead.OriginalLeadID = dup.OriginalLeadID

		lead.ID = uuid.NewString()
		lead.BatchID = batch.ID
		lead.CreatedAt = time.Now()
		lead.QualityLead = s.isQuality(lead)
		pending = append(pending, lead)
	}

	// matching: one batched call per upload
	phones := make([]string, 0, len(pending))
	for _, lead := range pending {
		phones = append(phones, lead.PhoneNumber)
	}
	matchedSet := s.matcher.Match(phones)
	now := time.Now()
	for _, lead := range pending {
		if matchedSet[lead.PhoneNumber] {
			lead.Matched = true
			t := now
			lead.MatchedAt = &t
		}
	}

	// persisting: one bad row must not lose the others
	for _, lead := range pending {
		if err := s.leads.Create(lead); err != nil {
			summary.ErrorMessages = append(summary.ErrorMessages,
				fmt.Sprintf("row %d: persist failed: %v", lead.RowNumber, err))
			continue
		}
		summary.ProcessedLeads++
		detail := leadDetail(lead)
		summary.Leads = append(summary.Leads, detail)
		if lead.IsDuplicate {
			summary.Duplicates++
			summary.DuplicateLeads = append(summary.DuplicateLeads, detail)
		}
		if lead.Matched {
			summary.MatchedLeads++
		}
	}
	summary.Errors = len(summary.ErrorMessages)

	// finalized: counts are written exactly once
	counts := models.BatchCounts{
		TotalRows:      summary.TotalRows,
		ProcessedLeads: summary.ProcessedLeads,
		Duplicates:     summary.Duplicates,
		ErrorCount:     summary.Errors,
		MatchedLeads:   summary.MatchedLeads,
	}
	if err := s.batches.Finalize(batch.ID, counts); err != nil {
		log.Printf("[ingest][batch=%d] finalize failed: %v", batch.ID, err)
	}

	s.notify(in.FileName, summary)
	return summary, nil
}

func (s *IngestionService) isQuality(lead *models.Lead) bool {
	if lead.SalaryValue < s.salaryThreshold {
		return false
	}
	if len(s.qualityCampaigns) == 0 {
		return true
	}
	return s.qualityCampaigns[lead.AdID]
}

func (s *IngestionService) notify(fileName string, summary *UploadSummary) {
	if s.mailer != nil {
		if err := s.mailer.SendUploadSummary(fileName, summary); err != nil {
			log.Printf("[ingest][mail] summary mail failed: %v", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.BatchProcessed(fileName, summary); err != nil {
			log.Printf("[ingest][tg] notification failed: %v", err)
		}
	}
}

func leadDetail(lead *models.Lead) LeadDetail {
	var extra []string
	for k := range lead.AdditionalData {
		extra = append(extra, k)
	}
	return LeadDetail{
		ID:              lead.ID,
		RowNumber:       lead.RowNumber,
		Phone:           lead.PhoneNumber,
		TaxID:           lead.TaxID,
		Email:           lead.Email,
		IsDuplicate:     lead.IsDuplicate,
		DuplicateReason: lead.DuplicateReason,
		Matched:         lead.Matched,
		ExtraFields:     extra,
	}
}
