package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadflow/internal/models"
)

func TestHistoryDeleteRemovesOnlyItsLeads(t *testing.T) {
	leads := &fakeLeadStore{leads: []*models.Lead{
		{ID: "a", BatchID: 1, PhoneNumber: "9034955557"},
		{ID: "b", BatchID: 1, PhoneNumber: "9812345670"},
		{ID: "c", BatchID: 2, PhoneNumber: "8887776665"},
	}}
	batches := &fakeBatchHistory{batches: map[int64]*models.UploadBatch{
		1: {ID: 1, FileName: "first.xlsx"},
		2: {ID: 2, FileName: "second.xlsx"},
	}}
	svc := NewHistoryService(batches, leads)

	deleted, err := svc.Delete(1)
	require.NoError(t, err)

	// the count reflects the rows actually removed
	assert.Equal(t, int64(2), deleted)

	// the other batch keeps its leads and its audit record
	require.Len(t, leads.leads, 1)
	assert.Equal(t, "c", leads.leads[0].ID)
	assert.Equal(t, []int64{1}, batches.deleted)
	assert.NotNil(t, batches.batches[2])
}

func TestHistoryDeleteUnknownBatch(t *testing.T) {
	leads := &fakeLeadStore{leads: []*models.Lead{
		{ID: "a", BatchID: 1},
	}}
	batches := &fakeBatchHistory{batches: map[int64]*models.UploadBatch{}}
	svc := NewHistoryService(batches, leads)

	_, err := svc.Delete(99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// nothing was touched
	require.Len(t, leads.leads, 1)
	assert.Empty(t, batches.deleted)
}

func TestHistoryUpdateKeepsUploaderWhenBlank(t *testing.T) {
	batches := &fakeBatchHistory{batches: map[int64]*models.UploadBatch{
		5: {ID: 5, UploadedBy: "ops", Budget: 100},
	}}
	svc := NewHistoryService(batches, &fakeLeadStore{})

	updated, err := svc.Update(5, "", 250)
	require.NoError(t, err)
	assert.Equal(t, "ops", updated.UploadedBy)
	assert.Equal(t, 250.0, updated.Budget)
}
