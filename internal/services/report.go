package services

import (
	"log"
	"time"
)

type ReportFilter struct {
	From            time.Time
	To              time.Time
	AdID            string
	SalaryThreshold float64
}

type ReportSummary struct {
	// customer database aggregates
	TotalCustomers   int     `json:"total_customers"`
	QualityCustomers int     `json:"quality_customers"`
	DisbursedCount   int     `json:"disbursed_count"`
	LoanAmountTotal  float64 `json:"loan_amount_total"`
	ConversionRate   float64 `json:"conversion_rate"`

	// lead store aggregates
	TotalLeads     int `json:"total_leads"`
	MatchedLeads   int `json:"matched_leads"`
	DuplicateLeads int `json:"duplicate_leads"`
	QualityLeads   int `json:"quality_leads"`
}

type ReconcileResult struct {
	TotalLeads        int `json:"total_leads"`
	PreviouslyMatched int `json:"previously_matched"`
	NewlyMatched      int `json:"newly_matched"`
	Unmatched         int `json:"unmatched"`
}

// ReportService issues parametrized aggregates against the customer
// database and blends them with matching statistics from the lead store.
type ReportService struct {
	leads     LeadStore
	leadStats LeadAggregates
	customers CustomerAggregates
	matcher   *Matcher
}

func NewReportService(leads LeadStore, leadStats LeadAggregates, customers CustomerAggregates, matcher *Matcher) *ReportService {
	return &ReportService{leads: leads, leadStats: leadStats, customers: customers, matcher: matcher}
}

func (s *ReportService) Summary(f ReportFilter) (*ReportSummary, error) {
	out := &ReportSummary{}
	var err error

	if out.TotalCustomers, err = s.customers.CountCustomers(f.From, f.To, f.AdID); err != nil {
		return nil, err
	}
	if out.QualityCustomers, err = s.customers.CountQuality(f.From, f.To, f.AdID, f.SalaryThreshold); err != nil {
		return nil, err
	}
	if out.DisbursedCount, err = s.customers.CountDisbursed(f.From, f.To, f.AdID); err != nil {
		return nil, err
	}
	if out.LoanAmountTotal, err = s.customers.SumLoanAmounts(f.From, f.To, f.AdID); err != nil {
		return nil, err
	}
	if out.TotalCustomers > 0 {
		out.ConversionRate = float64(out.DisbursedCount) / float64(out.TotalCustomers)
	}

	if out.TotalLeads, err = s.leadStats.CountBetween(f.From, f.To); err != nil {
		return nil, err
	}
	if out.MatchedLeads, err = s.leadStats.CountMatched(f.From, f.To); err != nil {
		return nil, err
	}
	if out.DuplicateLeads, err = s.leadStats.CountDuplicates(f.From, f.To); err != nil {
		return nil, err
	}
	if out.QualityLeads, err = s.leadStats.CountQuality(f.From, f.To); err != nil {
		return nil, err
	}
	return out, nil
}

// Reconcile retroactively re-runs cross-store matching over a date window.
// Leads already matched are left alone (the flag only ever goes false to
// true), the unmatched subset is re-matched and newly discovered matches
// are persisted. Running it twice over the same window yields the same
// totals with newly_matched zero on the second run.
func (s *ReportService) Reconcile(from, to time.Time) (*ReconcileResult, error) {
	leads, err := s.leads.ListBetween(from, to)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{TotalLeads: len(leads)}
	var unmatched []string
	phoneToIDs := map[string][]string{}
	for _, lead := range leads {
		if lead.Matched {
			result.PreviouslyMatched++
			continue
		}
		unmatched = append(unmatched, lead.PhoneNumber)
		phoneToIDs[lead.PhoneNumber] = append(phoneToIDs[lead.PhoneNumber], lead.ID)
	}

	matchedSet := s.matcher.Match(unmatched)
	now := time.Now()
	seen := map[string]bool{}
	for raw := range matchedSet {
		for _, id := range phoneToIDs[raw] {
			if seen[id] {
				continue
			}
			seen[id] = true
			if err := s.leads.MarkMatched(id, now); err != nil {
				log.Printf("[report][reconcile] mark matched %s failed: %v", id, err)
				continue
			}
			result.NewlyMatched++
		}
	}
	result.Unmatched = result.TotalLeads - result.PreviouslyMatched - result.NewlyMatched
	return result, nil
}
