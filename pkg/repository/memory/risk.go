package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/model"
)

// riskKey is a composite key for risk entries (orgID + riskID)
type riskKey struct {
	orgID string
	id    int64
}

type riskRepository struct {
	mu     sync.RWMutex
	risks  map[riskKey]*model.Risk
	nextID int64
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make(map[riskKey]*model.Risk),
	}
}

func copyRisk(r *model.Risk) *model.Risk {
	copied := *r
	if r.ControlEffectiveness != nil {
		v := *r.ControlEffectiveness
		copied.ControlEffectiveness = &v
	}
	return &copied
}

func (r *riskRepository) Create(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()

	created := copyRisk(risk)
	created.ID = r.nextID
	created.OrgID = orgID
	created.CreatedAt = now
	created.UpdatedAt = now

	r.risks[riskKey{orgID: orgID, id: created.ID}] = created
	return copyRisk(created), nil
}

func (r *riskRepository) Get(ctx context.Context, orgID string, id int64) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[riskKey{orgID: orgID, id: id}]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("orgID", orgID), goerr.V("id", id))
	}

	return copyRisk(risk), nil
}

func (r *riskRepository) List(ctx context.Context, orgID string) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*model.Risk{}
	for key, risk := range r.risks {
		if key.orgID == orgID {
			result = append(result, copyRisk(risk))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *riskRepository) Update(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := riskKey{orgID: orgID, id: risk.ID}
	existing, exists := r.risks[key]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("orgID", orgID), goerr.V("id", risk.ID))
	}

	updated := copyRisk(risk)
	updated.OrgID = orgID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.risks[key] = updated
	return copyRisk(updated), nil
}

func (r *riskRepository) Delete(ctx context.Context, orgID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := riskKey{orgID: orgID, id: id}
	if _, exists := r.risks[key]; !exists {
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("orgID", orgID), goerr.V("id", id))
	}

	delete(r.risks, key)
	return nil
}
