package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// CustomerRepository reads the external customer database. That store is
// owned by a separate system: this repository only ever issues SELECTs
// against customer_profiles and loan_journeys.
type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	if db == nil {
		log.Fatalf("received nil customer database connection")
	}
	return &CustomerRepository{db: db}
}

// AllMobileNumbers reads the entire mobile-number column, filtered to
// non-empty entries of plausible length. The matcher normalizes the values
// in memory; query-time matching against unnormalized numbers under-matches.
func (r *CustomerRepository) AllMobileNumbers() ([]string, error) {
	const query = `
		SELECT mobile_number
		FROM customer_profiles
		WHERE mobile_number IS NOT NULL
		  AND length(trim(mobile_number)) >= 10
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func dateClause(query string, args []interface{}, from, to time.Time, column string) (string, []interface{}) {
	i := len(args) + 1
	if !from.IsZero() {
		query += fmt.Sprintf(" AND %s >= $%d", column, i)
		args = append(args, from)
		i++
	}
	if !to.IsZero() {
		query += fmt.Sprintf(" AND %s < $%d", column, i)
		args = append(args, to)
	}
	return query, args
}

// CountCustomers counts customer profiles, optionally filtered by campaign
// and date window.
func (r *CustomerRepository) CountCustomers(from, to time.Time, adID string) (int, error) {
	query := `SELECT COUNT(*) FROM customer_profiles WHERE 1=1`
	args := []interface{}{}
	if adID != "" {
		query += " AND ad_id = $1"
		args = append(args, adID)
	}
	query, args = dateClause(query, args, from, to, "created_at")
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	return n, err
}

// CountQuality counts customers meeting the salary threshold, optionally
// narrowed to one campaign.
func (r *CustomerRepository) CountQuality(from, to time.Time, adID string, salaryThreshold float64) (int, error) {
	query := `SELECT COUNT(*) FROM customer_profiles WHERE salary >= $1`
	args := []interface{}{salaryThreshold}
	if adID != "" {
		query += " AND ad_id = $2"
		args = append(args, adID)
	}
	query, args = dateClause(query, args, from, to, "created_at")
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	return n, err
}

// CountDisbursed counts customers whose loan journey reached the disbursed
// stage.
func (r *CustomerRepository) CountDisbursed(from, to time.Time, adID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM customer_profiles c
		JOIN loan_journeys j ON j.customer_id = c.id
		WHERE j.stage = 'disbursed'`
	args := []interface{}{}
	if adID != "" {
		query += " AND c.ad_id = $1"
		args = append(args, adID)
	}
	query, args = dateClause(query, args, from, to, "j.disbursed_at")
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	return n, err
}

// SumLoanAmounts totals disbursed loan amounts.
func (r *CustomerRepository) SumLoanAmounts(from, to time.Time, adID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(j.loan_amount), 0)
		FROM customer_profiles c
		JOIN loan_journeys j ON j.customer_id = c.id
		WHERE j.stage = 'disbursed'`
	args := []interface{}{}
	if adID != "" {
		query += " AND c.ad_id = $1"
		args = append(args, adID)
	}
	query, args = dateClause(query, args, from, to, "j.disbursed_at")
	var sum float64
	err := r.db.QueryRow(query, args...).Scan(&sum)
	return sum, err
}
