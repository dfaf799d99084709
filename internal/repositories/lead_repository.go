package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"leadflow/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `
	id, batch_id, row_number, phone_number, salary_bracket, ad_id, platform,
	source_created_at, first_name, last_name, tax_id, email, age, gender,
	city, state, pincode, occupation, employer, loan_amount, loan_purpose,
	additional_data, is_duplicate, duplicate_reason, original_lead_id,
	matched, matched_at, quality_lead, salary_value, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*models.Lead, error) {
	l := &models.Lead{}
	var matchedAt sql.NullTime
	err := row.Scan(
		&l.ID, &l.BatchID, &l.RowNumber, &l.PhoneNumber, &l.SalaryBracket,
		&l.AdID, &l.Platform, &l.SourceCreatedAt, &l.FirstName, &l.LastName,
		&l.TaxID, &l.Email, &l.Age, &l.Gender, &l.City, &l.State, &l.Pincode,
		&l.Occupation, &l.Employer, &l.LoanAmount, &l.LoanPurpose,
		&l.AdditionalData, &l.IsDuplicate, &l.DuplicateReason,
		&l.OriginalLeadID, &l.Matched, &matchedAt, &l.QualityLead,
		&l.SalaryValue, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if matchedAt.Valid {
		t := matchedAt.Time
		l.MatchedAt = &t
	}
	return l, nil
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
		        $18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30)
	`
	var matchedAt sql.NullTime
	if lead.MatchedAt != nil {
		matchedAt = sql.NullTime{Time: *lead.MatchedAt, Valid: true}
	}
	_, err := r.db.Exec(query,
		lead.ID, lead.BatchID, lead.RowNumber, lead.PhoneNumber,
		lead.SalaryBracket, lead.AdID, lead.Platform, lead.SourceCreatedAt,
		lead.FirstName, lead.LastName, lead.TaxID, lead.Email, lead.Age,
		lead.Gender, lead.City, lead.State, lead.Pincode, lead.Occupation,
		lead.Employer, lead.LoanAmount, lead.LoanPurpose, lead.AdditionalData,
		lead.IsDuplicate, lead.DuplicateReason, lead.OriginalLeadID,
		lead.Matched, matchedAt, lead.QualityLead, lead.SalaryValue,
		lead.CreatedAt,
	)
	return err
}

func (r *LeadRepository) findOne(query string, arg interface{}) (*models.Lead, error) {
	lead, err := scanLead(r.db.QueryRow(query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// FindByPhone returns the earliest stored lead with this phone number, or
// nil when none exists.
func (r *LeadRepository) FindByPhone(phoneNumber string) (*models.Lead, error) {
	return r.findOne(`SELECT `+leadColumns+` FROM leads WHERE phone_number=$1 ORDER BY created_at, row_number LIMIT 1`, phoneNumber)
}

func (r *LeadRepository) FindByTaxID(taxID string) (*models.Lead, error) {
	return r.findOne(`SELECT `+leadColumns+` FROM leads WHERE tax_id=$1 AND tax_id <> '' ORDER BY created_at, row_number LIMIT 1`, taxID)
}

func (r *LeadRepository) FindByEmail(email string) (*models.Lead, error) {
	return r.findOne(`SELECT `+leadColumns+` FROM leads WHERE email=$1 AND email <> '' ORDER BY created_at, row_number LIMIT 1`, email)
}

// MarkMatched flips the customer-profile match flag to true. It never flips
// it back: an already matched lead keeps its original match timestamp.
func (r *LeadRepository) MarkMatched(id string, matchedAt time.Time) error {
	const query = `
		UPDATE leads SET matched=true, matched_at=$2
		WHERE id=$1 AND matched=false
	`
	_, err := r.db.Exec(query, id, matchedAt)
	return err
}

func (r *LeadRepository) ListBetween(from, to time.Time) ([]*models.Lead, error) {
	const query = `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at, row_number
	`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func collectLeads(rows *sql.Rows) ([]*models.Lead, error) {
	var out []*models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) FilterLeads(duplicate, quality *bool, adID, sortBy, order string, limit, offset int) ([]*models.Lead, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	allowed := map[string]bool{"created_at": true, "row_number": true, "phone_number": true, "salary_value": true}
	if !allowed[sortBy] {
		sortBy = "created_at"
	}

	query := "SELECT " + leadColumns + " FROM leads WHERE 1=1"
	args := []interface{}{}
	i := 1

	if duplicate != nil {
		query += fmt.Sprintf(" AND is_duplicate = $%d", i)
		args = append(args, *duplicate)
		i++
	}
	if quality != nil {
		query += fmt.Sprintf(" AND quality_lead = $%d", i)
		args = append(args, *quality)
		i++
	}
	if adID != "" {
		query += fmt.Sprintf(" AND ad_id = $%d", i)
		args = append(args, adID)
		i++
	}

	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortBy, order, i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func (r *LeadRepository) ListDuplicates(limit, offset int) ([]*models.Lead, error) {
	const query = `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE is_duplicate = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// DistinctAdditionalFields lists every overflow column header seen across
// all uploads.
func (r *LeadRepository) DistinctAdditionalFields() ([]string, error) {
	const query = `
		SELECT DISTINCT jsonb_object_keys(additional_data)
		FROM leads
		ORDER BY 1
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// DeleteByBatch removes every lead owned by the batch and reports how many
// rows were actually removed.
func (r *LeadRepository) DeleteByBatch(batchID int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM leads WHERE batch_id=$1`, batchID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *LeadRepository) countWhere(clause string, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE ` + clause
	args := []interface{}{}
	i := 1
	if !from.IsZero() {
		query += fmt.Sprintf(" AND created_at >= $%d", i)
		args = append(args, from)
		i++
	}
	if !to.IsZero() {
		query += fmt.Sprintf(" AND created_at < $%d", i)
		args = append(args, to)
	}
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	return n, err
}

func (r *LeadRepository) CountBetween(from, to time.Time) (int, error) {
	return r.countWhere("1=1", from, to)
}

func (r *LeadRepository) CountMatched(from, to time.Time) (int, error) {
	return r.countWhere("matched = true", from, to)
}

func (r *LeadRepository) CountDuplicates(from, to time.Time) (int, error) {
	return r.countWhere("is_duplicate = true", from, to)
}

func (r *LeadRepository) CountQuality(from, to time.Time) (int, error) {
	return r.countWhere("quality_lead = true", from, to)
}
