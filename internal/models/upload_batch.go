package models

import "time"

// UploadBatch is the audit record for one spreadsheet upload. Count fields
// start at zero and are finalized exactly once after the batch is processed.
type UploadBatch struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploadedBy string    `json:"uploaded_by"`
	Budget     float64   `json:"budget"`

	TotalRows      int `json:"total_rows"`
	ProcessedLeads int `json:"processed_leads"`
	Duplicates     int `json:"duplicates"`
	ErrorCount     int `json:"error_count"`
	MatchedLeads   int `json:"matched_leads"`
}

// BatchCounts carries the final counters written to an UploadBatch.
type BatchCounts struct {
	TotalRows      int
	ProcessedLeads int
	Duplicates     int
	ErrorCount     int
	MatchedLeads   int
}
