package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"leadflow/internal/models"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newTestIngestion(leads *fakeLeadStore, batches *fakeBatchStore, customers *fakeCustomerStore) *IngestionService {
	checker := NewDuplicateChecker(leads)
	matcher := NewMatcher(customers)
	return NewIngestionService(leads, batches, checker, matcher, 30000, nil)
}

func TestProcessUploadScenario(t *testing.T) {
	// 5 rows; row 3 has an 8-digit phone; row 5 repeats row 1's phone
	path := writeWorkbook(t, [][]interface{}{
		{"Phone Number", "Salary", "Email", "referrer_url"},
		{"919034955557", "25000-35000", "a@example.com", "https://x"},
		{"9812345670", "50000-75000", "b@example.com", ""},
		{"12345678", "25000-35000", "c@example.com", ""},
		{"8887776665", "below_15000", "", ""},
		{"919034955557", "25000-35000", "", ""},
	})

	leads := &fakeLeadStore{}
	batches := &fakeBatchStore{}
	customers := &fakeCustomerStore{mobiles: []string{"9812345670"}}
	svc := newTestIngestion(leads, batches, customers)

	summary, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.BatchID)
	assert.Equal(t, 5, summary.TotalRows)
	assert.Equal(t, 4, summary.ProcessedLeads)
	assert.Equal(t, 1, summary.Errors)
	assert.Len(t, summary.ErrorMessages, 1)
	assert.Contains(t, summary.ErrorMessages[0], "row 4")

	// sibling rows in the same file are not flagged against each other:
	// duplicate checks only see the persisted store
	assert.Equal(t, 0, summary.Duplicates)

	// one batched match against the customer table
	assert.Equal(t, 1, customers.calls)
	assert.Equal(t, 1, summary.MatchedLeads)

	// finalized exactly once with the summary counts
	require.NotNil(t, batches.finalized)
	assert.Equal(t, 1, batches.finalCalls)
	assert.Equal(t, models.BatchCounts{
		TotalRows: 5, ProcessedLeads: 4, Duplicates: 0, ErrorCount: 1, MatchedLeads: 1,
	}, *batches.finalized)

	// temp file is cleaned up
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// provenance: row numbers follow file order, batch id stamped
	require.Len(t, leads.leads, 4)
	assert.Equal(t, 2, leads.leads[0].RowNumber)
	assert.Equal(t, int64(1), leads.leads[0].BatchID)
	assert.NotEmpty(t, leads.leads[0].ID)
}

func TestProcessUploadKeepsSheetRowNumbersAcrossEmptyRows(t *testing.T) {
	// an empty row sits between two data rows; the lead after the gap must
	// carry its real sheet row, not a renumbered one
	path := writeWorkbook(t, [][]interface{}{
		{"phone"},
		{"9034955557"},
		{""},
		{"9812345670"},
	})

	leads := &fakeLeadStore{}
	svc := newTestIngestion(leads, &fakeBatchStore{}, &fakeCustomerStore{})

	summary, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalRows)
	require.Len(t, leads.leads, 2)
	assert.Equal(t, 2, leads.leads[0].RowNumber)
	assert.Equal(t, 4, leads.leads[1].RowNumber)
}

func TestProcessUploadFlagsDuplicatesFromEarlierBatches(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone", "email"},
		{"9034955557", "new@example.com"},
	})

	leads := &fakeLeadStore{leads: []*models.Lead{
		{ID: "orig-1", PhoneNumber: "9034955557", BatchID: 7},
	}}
	batches := &fakeBatchStore{}
	svc := newTestIngestion(leads, batches, &fakeCustomerStore{})

	summary, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Duplicates)
	require.Len(t, summary.DuplicateLeads, 1)
	assert.Equal(t, "Phone number already exists", summary.DuplicateLeads[0].DuplicateReason)

	// the duplicate is still persisted, flagged, pointing at the original
	require.Len(t, leads.leads, 2)
	persisted := leads.leads[1]
	assert.True(t, persisted.IsDuplicate)
	assert.Equal(t, "orig-1", persisted.OriginalLeadID)
}

func TestProcessUploadQualityFlag(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone", "salary"},
		{"9034955557", "50000-75000"},
		{"9812345670", "below_15000"},
	})

	leads := &fakeLeadStore{}
	svc := newTestIngestion(leads, &fakeBatchStore{}, &fakeCustomerStore{})

	_, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)
	require.Len(t, leads.leads, 2)
	assert.True(t, leads.leads[0].QualityLead)
	assert.Equal(t, 62500.0, leads.leads[0].SalaryValue)
	assert.False(t, leads.leads[1].QualityLead)
}

func TestProcessUploadRejectsNonSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	batches := &fakeBatchStore{}
	svc := newTestIngestion(&fakeLeadStore{}, batches, &fakeCustomerStore{})

	_, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.txt", ContentType: "text/plain"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUpload)
	// rejected before any side effects
	assert.Nil(t, batches.created)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessUploadRejectsEmptySheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone", "email"},
	})

	batches := &fakeBatchStore{}
	svc := newTestIngestion(&fakeLeadStore{}, batches, &fakeCustomerStore{})

	_, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUpload)
	assert.Nil(t, batches.created)
}

func TestProcessUploadBatchCreateFailureIsNotClientError(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone"},
		{"9034955557"},
	})

	batches := &fakeBatchStore{createErr: errStoreDown}
	svc := newTestIngestion(&fakeLeadStore{}, batches, &fakeCustomerStore{})

	_, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidUpload)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestProcessUploadKeepsGoingOnPersistError(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone"},
		{"9034955557"},
		{"9812345670"},
	})

	leads := &fakeLeadStore{createErr: map[int]error{2: errStoreDown}}
	batches := &fakeBatchStore{}
	svc := newTestIngestion(leads, batches, &fakeCustomerStore{})

	summary, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProcessedLeads)
	assert.Equal(t, 1, summary.Errors)
	assert.Contains(t, summary.ErrorMessages[0], "persist failed")
	assert.Equal(t, 1, batches.finalized.ProcessedLeads)
}

func TestProcessUploadDefaultsUploader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"phone"},
		{"9034955557"},
	})

	batches := &fakeBatchStore{}
	svc := newTestIngestion(&fakeLeadStore{}, batches, &fakeCustomerStore{})

	_, err := svc.ProcessUpload(UploadInput{FilePath: path, FileName: "leads.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "unknown", batches.created.UploadedBy)
}
