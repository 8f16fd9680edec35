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
)

type complaintDocument struct {
	ID          int64  `firestore:"id"`
	Reference   string `firestore:"reference"`
	OrgID       string `firestore:"org_id"`
	Subject     string `firestore:"subject"`
	Description string `firestore:"description"`

	ComplainantName  string `firestore:"complainant_name"`
	ComplainantEmail string `firestore:"complainant_email"`

	ReceivedDate       time.Time  `firestore:"received_date"`
	ResolutionDeadline *time.Time `firestore:"resolution_deadline"`
	ResolvedDate       *time.Time `firestore:"resolved_date"`

	FourWeekLetterSent  bool `firestore:"four_week_letter_sent"`
	EightWeekLetterSent bool `firestore:"eight_week_letter_sent"`
	FinalResponseSent   bool `firestore:"final_response_sent"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func toComplaintDocument(c *model.Complaint) *complaintDocument {
	return &complaintDocument{
		ID:                  c.ID,
		Reference:           c.Reference,
		OrgID:               c.OrgID,
		Subject:             c.Subject,
		Description:         c.Description,
		ComplainantName:     c.ComplainantName,
		ComplainantEmail:    c.ComplainantEmail,
		ReceivedDate:        c.ReceivedDate,
		ResolutionDeadline:  c.ResolutionDeadline,
		ResolvedDate:        c.ResolvedDate,
		FourWeekLetterSent:  c.FourWeekLetterSent,
		EightWeekLetterSent: c.EightWeekLetterSent,
		FinalResponseSent:   c.FinalResponseSent,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (d *complaintDocument) toModel() *model.Complaint {
	return &model.Complaint{
		ID:                  d.ID,
		Reference:           d.Reference,
		OrgID:               d.OrgID,
		Subject:             d.Subject,
		Description:         d.Description,
		ComplainantName:     d.ComplainantName,
		ComplainantEmail:    d.ComplainantEmail,
		ReceivedDate:        d.ReceivedDate,
		ResolutionDeadline:  d.ResolutionDeadline,
		ResolvedDate:        d.ResolvedDate,
		FourWeekLetterSent:  d.FourWeekLetterSent,
		EightWeekLetterSent: d.EightWeekLetterSent,
		FinalResponseSent:   d.FinalResponseSent,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

type complaintRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newComplaintRepository(client *firestore.Client) *complaintRepository {
	return &complaintRepository{client: client}
}

func (r *complaintRepository) complaintsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_complaints"
	}
	return "complaints"
}

func (r *complaintRepository) countersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_counters"
	}
	return "counters"
}

func (r *complaintRepository) Create(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	id, err := getNextID(ctx, r.client, r.countersCollection(), "complaint_counter")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := toComplaintDocument(c)
	doc.ID = id
	doc.CreatedAt = now
	doc.UpdatedAt = now

	docRef := r.client.Collection(r.complaintsCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create complaint")
	}

	return doc.toModel(), nil
}

func (r *complaintRepository) Get(ctx context.Context, id int64) (*model.Complaint, error) {
	docRef := r.client.Collection(r.complaintsCollection()).Doc(fmt.Sprintf("%d", id))
	snapshot, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "complaint not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get complaint", goerr.V("id", id))
	}

	var doc complaintDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal complaint", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *complaintRepository) list(ctx context.Context, iter *firestore.DocumentIterator) ([]*model.Complaint, error) {
	defer iter.Stop()

	complaints := []*model.Complaint{}
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate complaints")
		}

		var doc complaintDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal complaint")
		}
		complaints = append(complaints, doc.toModel())
	}

	return complaints, nil
}

func (r *complaintRepository) List(ctx context.Context) ([]*model.Complaint, error) {
	iter := r.client.Collection(r.complaintsCollection()).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	return r.list(ctx, iter)
}

func (r *complaintRepository) ListOpen(ctx context.Context) ([]*model.Complaint, error) {
	iter := r.client.Collection(r.complaintsCollection()).
		Where("resolved_date", "==", nil).
		Documents(ctx)
	return r.list(ctx, iter)
}

func (r *complaintRepository) Update(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	existing, err := r.Get(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	doc := toComplaintDocument(c)
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.complaintsCollection()).Doc(fmt.Sprintf("%d", c.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update complaint", goerr.V("id", c.ID))
	}

	return doc.toModel(), nil
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	docRef := r.client.Collection(r.complaintsCollection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete complaint", goerr.V("id", id))
	}

	return nil
}
