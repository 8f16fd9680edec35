package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

type riskDocument struct {
	ID                   int64     `firestore:"id"`
	OrgID                string    `firestore:"org_id"`
	Name                 string    `firestore:"name"`
	Description          string    `firestore:"description"`
	CategoryID           string    `firestore:"category_id"`
	Status               string    `firestore:"status"`
	Likelihood           int       `firestore:"likelihood"`
	Impact               int       `firestore:"impact"`
	ResidualLikelihood   int       `firestore:"residual_likelihood"`
	ResidualImpact       int       `firestore:"residual_impact"`
	ControlEffectiveness *float64  `firestore:"control_effectiveness"`
	OwnerID              string    `firestore:"owner_id"`
	CreatedAt            time.Time `firestore:"created_at"`
	UpdatedAt            time.Time `firestore:"updated_at"`
}

func toRiskDocument(r *model.Risk) *riskDocument {
	return &riskDocument{
		ID:                   r.ID,
		OrgID:                r.OrgID,
		Name:                 r.Name,
		Description:          r.Description,
		CategoryID:           r.CategoryID.String(),
		Status:               r.Status,
		Likelihood:           r.Likelihood,
		Impact:               r.Impact,
		ResidualLikelihood:   r.ResidualLikelihood,
		ResidualImpact:       r.ResidualImpact,
		ControlEffectiveness: r.ControlEffectiveness,
		OwnerID:              r.OwnerID,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func (d *riskDocument) toModel() *model.Risk {
	return &model.Risk{
		ID:                   d.ID,
		OrgID:                d.OrgID,
		Name:                 d.Name,
		Description:          d.Description,
		CategoryID:           types.CategoryID(d.CategoryID),
		Status:               d.Status,
		Likelihood:           d.Likelihood,
		Impact:               d.Impact,
		ResidualLikelihood:   d.ResidualLikelihood,
		ResidualImpact:       d.ResidualImpact,
		ControlEffectiveness: d.ControlEffectiveness,
		OwnerID:              d.OwnerID,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskRepository(client *firestore.Client) *riskRepository {
	return &riskRepository{client: client}
}

func (r *riskRepository) risksCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risks"
	}
	return "risks"
}

func (r *riskRepository) countersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *riskRepository) Create(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	id, err := getNextID(ctx, r.client, r.countersCollection(), "risk_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := toRiskDocument(risk)
	doc.ID = id
	doc.OrgID = orgID
	doc.CreatedAt = now
	doc.UpdatedAt = now

	docRef := r.client.Collection(r.risksCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}

	return doc.toModel(), nil
}

func (r *riskRepository) Get(ctx context.Context, orgID string, id int64) (*model.Risk, error) {
	docRef := r.client.Collection(r.risksCollection()).Doc(fmt.Sprintf("%d", id))
	snapshot, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var doc riskDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	if doc.OrgID != orgID {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("orgID", orgID), goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) List(ctx context.Context, orgID string) ([]*model.Risk, error) {
	iter := r.client.Collection(r.risksCollection()).
		Where("org_id", "==", orgID).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	risks := []*model.Risk{}
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks", goerr.V("orgID", orgID))
		}

		var doc riskDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}
		risks = append(risks, doc.toModel())
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	existing, err := r.Get(ctx, orgID, risk.ID)
	if err != nil {
		return nil, err
	}

	doc := toRiskDocument(risk)
	doc.OrgID = orgID
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.risksCollection()).Doc(fmt.Sprintf("%d", risk.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V("id", risk.ID))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) Delete(ctx context.Context, orgID string, id int64) error {
	if _, err := r.Get(ctx, orgID, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.risksCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}

	return nil
}
