package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/model"
)

type complaintRepository struct {
	mu         sync.RWMutex
	complaints map[int64]*model.Complaint
	nextID     int64
}

func newComplaintRepository() *complaintRepository {
	return &complaintRepository{
		complaints: make(map[int64]*model.Complaint),
	}
}

func copyComplaint(c *model.Complaint) *model.Complaint {
	copied := *c
	if c.ResolutionDeadline != nil {
		v := *c.ResolutionDeadline
		copied.ResolutionDeadline = &v
	}
	if c.ResolvedDate != nil {
		v := *c.ResolvedDate
		copied.ResolvedDate = &v
	}
	return &copied
}

func (r *complaintRepository) Create(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()

	created := copyComplaint(c)
	created.ID = r.nextID
	created.CreatedAt = now
	created.UpdatedAt = now

	r.complaints[created.ID] = created
	return copyComplaint(created), nil
}

func (r *complaintRepository) Get(ctx context.Context, id int64) (*model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.complaints[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "complaint not found", goerr.V("id", id))
	}

	return copyComplaint(c), nil
}

func (r *complaintRepository) List(ctx context.Context) ([]*model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Complaint{}
	for _, c := range r.complaints {
		result = append(result, copyComplaint(c))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *complaintRepository) ListOpen(ctx context.Context) ([]*model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Complaint{}
	for _, c := range r.complaints {
		if c.ResolvedDate == nil {
			result = append(result, copyComplaint(c))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *complaintRepository) Update(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.complaints[c.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "complaint not found", goerr.V("id", c.ID))
	}

	updated := copyComplaint(c)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.complaints[c.ID] = updated
	return copyComplaint(updated), nil
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.complaints[id]; !exists {
		return goerr.Wrap(ErrNotFound, "complaint not found", goerr.V("id", id))
	}

	delete(r.complaints, id)
	return nil
}
