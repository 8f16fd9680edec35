package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/riskscore"
	"github.com/regmon-lab/regmon/pkg/utils/errutil"
)

type riskRequest struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	CategoryID           string   `json:"categoryId"`
	Status               string   `json:"status"`
	Likelihood           int      `json:"likelihood"`
	Impact               int      `json:"impact"`
	ResidualLikelihood   int      `json:"residualLikelihood"`
	ResidualImpact       int      `json:"residualImpact"`
	ControlEffectiveness *float64 `json:"controlEffectiveness"`
	OwnerID              string   `json:"ownerId"`
}

func (req *riskRequest) toModel() *model.Risk {
	return &model.Risk{
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           types.CategoryID(req.CategoryID),
		Status:               req.Status,
		Likelihood:           req.Likelihood,
		Impact:               req.Impact,
		ResidualLikelihood:   req.ResidualLikelihood,
		ResidualImpact:       req.ResidualImpact,
		ControlEffectiveness: req.ControlEffectiveness,
		OwnerID:              req.OwnerID,
	}
}

type riskResponse struct {
	ID                   int64    `json:"id"`
	OrgID                string   `json:"orgId"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	CategoryID           string   `json:"categoryId"`
	Status               string   `json:"status"`
	Likelihood           int      `json:"likelihood"`
	Impact               int      `json:"impact"`
	ResidualLikelihood   int      `json:"residualLikelihood"`
	ResidualImpact       int      `json:"residualImpact"`
	ControlEffectiveness *float64 `json:"controlEffectiveness"`
	OwnerID              string   `json:"ownerId"`
	InherentScore        int      `json:"inherentScore"`
	ResidualScore        int      `json:"residualScore"`
	SeverityBand         string   `json:"severityBand"`
	FilterBucket         string   `json:"filterBucket"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

func toRiskResponse(r *model.Risk) riskResponse {
	return riskResponse{
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
		InherentScore:        r.InherentScore(),
		ResidualScore:        r.ResidualScore(),
		SeverityBand:         riskscore.SeverityBand(r.InherentScore()).String(),
		FilterBucket:         riskscore.FilterBucket(r.InherentScore()).String(),
		CreatedAt:            r.CreatedAt.Format(timeFormat),
		UpdatedAt:            r.UpdatedAt.Format(timeFormat),
	}
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	risks, err := s.uc.Risk.ListRisks(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]riskResponse, len(risks))
	for i, risk := range risks {
		resp[i] = toRiskResponse(risk)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	var req riskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode risk request"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Risk.CreateRisk(r.Context(), orgID, req.toModel())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toRiskResponse(created))
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid risk ID"), http.StatusBadRequest)
		return
	}

	risk, err := s.uc.Risk.GetRisk(r.Context(), orgID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toRiskResponse(risk))
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid risk ID"), http.StatusBadRequest)
		return
	}

	var req riskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode risk request"), http.StatusBadRequest)
		return
	}

	risk := req.toModel()
	risk.ID = id

	updated, err := s.uc.Risk.UpdateRisk(r.Context(), orgID, risk)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toRiskResponse(updated))
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid risk ID"), http.StatusBadRequest)
		return
	}

	if err := s.uc.Risk.DeleteRisk(r.Context(), orgID, id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) riskSummary(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	summary, err := s.uc.Risk.Summary(r.Context(), orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, summary)
}

type heatMapCell struct {
	Likelihood int     `json:"likelihood"`
	Impact     int     `json:"impact"`
	Score      int     `json:"score"`
	Severity   string  `json:"severity"`
	Count      int     `json:"count"`
	RiskIDs    []int64 `json:"riskIds"`
}

type heatMapResponse struct {
	View string          `json:"view"`
	Grid [][]heatMapCell `json:"grid"`
}

func (s *Server) riskHeatMap(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	view, err := types.ParseHeatMapView(r.URL.Query().Get("view"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid heat map view"), http.StatusBadRequest)
		return
	}

	grid, err := s.uc.Risk.HeatMap(r.Context(), orgID, view)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := heatMapResponse{
		View: view.String(),
		Grid: make([][]heatMapCell, riskscore.GridSize),
	}
	for row := range grid {
		resp.Grid[row] = make([]heatMapCell, riskscore.GridSize)
		for col := range grid[row] {
			cell := &grid[row][col]
			ids := make([]int64, len(cell.Risks))
			for i, risk := range cell.Risks {
				ids[i] = risk.ID
			}
			resp.Grid[row][col] = heatMapCell{
				Likelihood: cell.Likelihood,
				Impact:     cell.Impact,
				Score:      cell.Score(),
				Severity:   riskscore.SeverityBand(cell.Score()).String(),
				Count:      len(cell.Risks),
				RiskIDs:    ids,
			}
		}
	}

	respondJSON(w, r, http.StatusOK, resp)
}
