package repositories

import (
	"database/sql"
	"log"

	"leadflow/internal/models"
)

type UploadBatchRepository struct {
	db *sql.DB
}

func NewUploadBatchRepository(db *sql.DB) *UploadBatchRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &UploadBatchRepository{db: db}
}

// Create inserts the batch with zero counts and fills in the generated id.
func (r *UploadBatchRepository) Create(batch *models.UploadBatch) error {
	const query = `
		INSERT INTO upload_batches
			(file_name, uploaded_at, uploaded_by, budget,
			 total_rows, processed_leads, duplicates, error_count, matched_leads)
		VALUES ($1, $2, $3, $4, 0, 0, 0, 0, 0)
		RETURNING id
	`
	return r.db.QueryRow(query,
		batch.FileName, batch.UploadedAt, batch.UploadedBy, batch.Budget,
	).Scan(&batch.ID)
}

// Finalize writes the batch counters. Counts are write-once: the batch is
// created with zeros and updated here exactly once, after processing ends.
func (r *UploadBatchRepository) Finalize(id int64, c models.BatchCounts) error {
	const query = `
		UPDATE upload_batches
		SET total_rows=$2, processed_leads=$3, duplicates=$4, error_count=$5, matched_leads=$6
		WHERE id=$1
	`
	_, err := r.db.Exec(query, id,
		c.TotalRows, c.ProcessedLeads, c.Duplicates, c.ErrorCount, c.MatchedLeads)
	return err
}

func (r *UploadBatchRepository) GetByID(id int64) (*models.UploadBatch, error) {
	const query = `
		SELECT id, file_name, uploaded_at, uploaded_by, budget,
		       total_rows, processed_leads, duplicates, error_count, matched_leads
		FROM upload_batches
		WHERE id=$1
	`
	b := &models.UploadBatch{}
	err := r.db.QueryRow(query, id).Scan(
		&b.ID, &b.FileName, &b.UploadedAt, &b.UploadedBy, &b.Budget,
		&b.TotalRows, &b.ProcessedLeads, &b.Duplicates, &b.ErrorCount, &b.MatchedLeads,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *UploadBatchRepository) ListPaginated(limit, offset int) ([]*models.UploadBatch, error) {
	const query = `
		SELECT id, file_name, uploaded_at, uploaded_by, budget,
		       total_rows, processed_leads, duplicates, error_count, matched_leads
		FROM upload_batches
		ORDER BY uploaded_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.UploadBatch
	for rows.Next() {
		b := &models.UploadBatch{}
		if err := rows.Scan(
			&b.ID, &b.FileName, &b.UploadedAt, &b.UploadedBy, &b.Budget,
			&b.TotalRows, &b.ProcessedLeads, &b.Duplicates, &b.ErrorCount, &b.MatchedLeads,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update changes the editable batch attributes. Count fields stay as
// finalized.
func (r *UploadBatchRepository) Update(id int64, uploadedBy string, budget float64) error {
	const query = `UPDATE upload_batches SET uploaded_by=$2, budget=$3 WHERE id=$1`
	_, err := r.db.Exec(query, id, uploadedBy, budget)
	return err
}

func (r *UploadBatchRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM upload_batches WHERE id=$1`, id)
	return err
}
