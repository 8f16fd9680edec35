package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/model/config"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/riskscore"
)

type RiskUseCase struct {
	repo       interfaces.Repository
	riskConfig *config.RiskConfig
}

func NewRiskUseCase(repo interfaces.Repository, cfg *config.RiskConfig) *RiskUseCase {
	return &RiskUseCase{
		repo:       repo,
		riskConfig: cfg,
	}
}

// validateRisk checks user-supplied risk fields. Inherent axes must be in
// [1,5]; residual axes may be 0 (unset, falls back to inherent) or [1,5];
// control effectiveness may be nil or [0,5].
func (uc *RiskUseCase) validateRisk(risk *model.Risk) error {
	if risk.Name == "" {
		return goerr.Wrap(ErrInvalidInput, "risk name is required")
	}

	if risk.Likelihood < 1 || risk.Likelihood > 5 {
		return goerr.Wrap(ErrInvalidInput, "likelihood must be between 1 and 5", goerr.V("likelihood", risk.Likelihood))
	}
	if risk.Impact < 1 || risk.Impact > 5 {
		return goerr.Wrap(ErrInvalidInput, "impact must be between 1 and 5", goerr.V("impact", risk.Impact))
	}
	if risk.ResidualLikelihood < 0 || risk.ResidualLikelihood > 5 {
		return goerr.Wrap(ErrInvalidInput, "residual likelihood must be between 0 and 5", goerr.V("residualLikelihood", risk.ResidualLikelihood))
	}
	if risk.ResidualImpact < 0 || risk.ResidualImpact > 5 {
		return goerr.Wrap(ErrInvalidInput, "residual impact must be between 0 and 5", goerr.V("residualImpact", risk.ResidualImpact))
	}
	if risk.ControlEffectiveness != nil {
		if v := *risk.ControlEffectiveness; v < 0 || v > 5 {
			return goerr.Wrap(ErrInvalidInput, "control effectiveness must be between 0 and 5", goerr.V("controlEffectiveness", v))
		}
	}

	if risk.CategoryID != "" {
		if err := uc.ValidateCategoryID(risk.CategoryID); err != nil {
			return goerr.Wrap(ErrInvalidInput, "invalid category ID: "+err.Error())
		}
	}

	return nil
}

func (uc *RiskUseCase) CreateRisk(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	if err := uc.validateRisk(risk); err != nil {
		return nil, err
	}

	created, err := uc.repo.Risk().Create(ctx, orgID, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}

	return created, nil
}

func (uc *RiskUseCase) UpdateRisk(ctx context.Context, orgID string, risk *model.Risk) (*model.Risk, error) {
	if err := uc.validateRisk(risk); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Risk().Update(ctx, orgID, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk")
	}

	return updated, nil
}

func (uc *RiskUseCase) DeleteRisk(ctx context.Context, orgID string, id int64) error {
	if err := uc.repo.Risk().Delete(ctx, orgID, id); err != nil {
		return goerr.Wrap(err, "failed to delete risk")
	}

	return nil
}

func (uc *RiskUseCase) GetRisk(ctx context.Context, orgID string, id int64) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, orgID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get risk")
	}

	return risk, nil
}

func (uc *RiskUseCase) ListRisks(ctx context.Context, orgID string) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().List(ctx, orgID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	return risks, nil
}

// Summary computes the portfolio summary over the organization's register
func (uc *RiskUseCase) Summary(ctx context.Context, orgID string) (riskscore.Summary, error) {
	risks, err := uc.repo.Risk().List(ctx, orgID)
	if err != nil {
		return riskscore.Summary{}, goerr.Wrap(err, "failed to list risks for summary")
	}

	return riskscore.Summarize(risks), nil
}

// HeatMap aggregates the organization's register into the 5x5 grid for
// the given view
func (uc *RiskUseCase) HeatMap(ctx context.Context, orgID string, view types.HeatMapView) (riskscore.Grid, error) {
	risks, err := uc.repo.Risk().List(ctx, orgID)
	if err != nil {
		return riskscore.Grid{}, goerr.Wrap(err, "failed to list risks for heat map")
	}

	return riskscore.BuildHeatMapGrid(risks, view), nil
}

func (uc *RiskUseCase) ValidateCategoryID(id types.CategoryID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if uc.riskConfig == nil {
		return nil
	}

	for _, cat := range uc.riskConfig.Categories {
		if types.CategoryID(cat.ID) == id {
			return nil
		}
	}

	return goerr.New("category ID not found in configuration", goerr.V("id", id))
}
