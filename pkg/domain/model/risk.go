package model

import (
	"time"

	"github.com/regmon-lab/regmon/pkg/domain/types"
)

// Risk represents a risk register entry. Likelihood and Impact are the
// inherent axes; the residual axes are zero when no post-control assessment
// has been recorded, in which case they fall back to the inherent values.
type Risk struct {
	ID          int64
	OrgID       string
	Name        string
	Description string
	CategoryID  types.CategoryID
	Status      string // opaque classification label, not interpreted here

	Likelihood         int
	Impact             int
	ResidualLikelihood int
	ResidualImpact     int

	// ControlEffectiveness is nil when no controls are mapped to this risk
	ControlEffectiveness *float64

	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InherentScore returns likelihood x impact before controls
func (r *Risk) InherentScore() int {
	return r.Likelihood * r.Impact
}

// ResidualAxes returns the post-control axes, falling back to the inherent
// values when a residual axis is unset (zero)
func (r *Risk) ResidualAxes() (likelihood, impact int) {
	likelihood = r.ResidualLikelihood
	if likelihood == 0 {
		likelihood = r.Likelihood
	}
	impact = r.ResidualImpact
	if impact == 0 {
		impact = r.Impact
	}
	return likelihood, impact
}

// ResidualScore returns likelihood x impact after controls
func (r *Risk) ResidualScore() int {
	l, i := r.ResidualAxes()
	return l * i
}

// Axes returns the (likelihood, impact) pair selected by the given view
func (r *Risk) Axes(view types.HeatMapView) (likelihood, impact int) {
	if view == types.ViewResidual {
		return r.ResidualAxes()
	}
	return r.Likelihood, r.Impact
}
