package services

import (
	"errors"
	"time"

	"leadflow/internal/models"
)

// in-memory stand-ins for the repositories

type fakeLeadStore struct {
	leads     []*models.Lead
	findErr   error
	createErr map[int]error // keyed by row number
	markedIDs []string
	createCnt int
}

func (f *fakeLeadStore) Create(lead *models.Lead) error {
	f.createCnt++
	if err := f.createErr[lead.RowNumber]; err != nil {
		return err
	}
	cp := *lead
	f.leads = append(f.leads, &cp)
	return nil
}

func (f *fakeLeadStore) findBy(match func(*models.Lead) bool) (*models.Lead, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, l := range f.leads {
		if match(l) {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadStore) FindByPhone(p string) (*models.Lead, error) {
	return f.findBy(func(l *models.Lead) bool { return l.PhoneNumber == p })
}

func (f *fakeLeadStore) FindByTaxID(t string) (*models.Lead, error) {
	return f.findBy(func(l *models.Lead) bool { return l.TaxID == t && t != "" })
}

func (f *fakeLeadStore) FindByEmail(e string) (*models.Lead, error) {
	return f.findBy(func(l *models.Lead) bool { return l.Email == e && e != "" })
}

func (f *fakeLeadStore) MarkMatched(id string, at time.Time) error {
	for _, l := range f.leads {
		if l.ID == id && !l.Matched {
			l.Matched = true
			t := at
			l.MatchedAt = &t
			f.markedIDs = append(f.markedIDs, id)
		}
	}
	return nil
}

func (f *fakeLeadStore) ListBetween(from, to time.Time) ([]*models.Lead, error) {
	return f.leads, nil
}

func (f *fakeLeadStore) DeleteByBatch(batchID int64) (int64, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	kept := f.leads[:0]
	var deleted int64
	for _, l := range f.leads {
		if l.BatchID == batchID {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	f.leads = kept
	return deleted, nil
}

type fakeBatchStore struct {
	created    *models.UploadBatch
	createErr  error
	finalized  *models.BatchCounts
	finalCalls int
}

func (f *fakeBatchStore) Create(b *models.UploadBatch) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = 1
	f.created = b
	return nil
}

func (f *fakeBatchStore) Finalize(id int64, c models.BatchCounts) error {
	f.finalCalls++
	f.finalized = &c
	return nil
}

type fakeBatchHistory struct {
	batches map[int64]*models.UploadBatch
	deleted []int64
}

func (f *fakeBatchHistory) GetByID(id int64) (*models.UploadBatch, error) {
	return f.batches[id], nil
}

func (f *fakeBatchHistory) ListPaginated(limit, offset int) ([]*models.UploadBatch, error) {
	out := make([]*models.UploadBatch, 0, len(f.batches))
	for _, b := range f.batches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBatchHistory) Update(id int64, uploadedBy string, budget float64) error {
	b, ok := f.batches[id]
	if !ok {
		return errStoreDown
	}
	b.UploadedBy = uploadedBy
	b.Budget = budget
	return nil
}

func (f *fakeBatchHistory) Delete(id int64) error {
	delete(f.batches, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCustomerStore struct {
	mobiles []string
	err     error
	calls   int
}

func (f *fakeCustomerStore) AllMobileNumbers() ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.mobiles, nil
}

var errStoreDown = errors.New("store unreachable")
