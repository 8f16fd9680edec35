package interfaces

import (
	"context"

	"github.com/regmon-lab/regmon/pkg/domain/model"
)

// ComplaintRepository defines the interface for Complaint data access
type ComplaintRepository interface {
	// Create creates a new complaint with auto-generated ID
	Create(ctx context.Context, c *model.Complaint) (*model.Complaint, error)

	// Get retrieves a complaint by ID
	Get(ctx context.Context, id int64) (*model.Complaint, error)

	// List retrieves all complaints
	List(ctx context.Context) ([]*model.Complaint, error)

	// ListOpen retrieves complaints without a resolved date.
	// Used by the deadline sweep worker.
	ListOpen(ctx context.Context) ([]*model.Complaint, error)

	// Update updates an existing complaint
	Update(ctx context.Context, c *model.Complaint) (*model.Complaint, error)

	// Delete deletes a complaint by ID
	Delete(ctx context.Context, id int64) error
}
