package interfaces

import (
	"context"

	"github.com/regmon-lab/regmon/pkg/domain/model"
)

// RiskRepository defines the interface for Risk data access
type RiskRepository interface {
	// Create creates a new risk with auto-generated ID
	Create(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID
	Get(ctx context.Context, orgID string, id int64) (*model.Risk, error)

	// List retrieves all risks for an organization
	List(ctx context.Context, orgID string) ([]*model.Risk, error)

	// Update updates an existing risk
	Update(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error)

	// Delete deletes a risk by ID
	Delete(ctx context.Context, orgID string, id int64) error
}
