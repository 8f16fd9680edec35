package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/utils/errutil"
)

type complaintRequest struct {
	OrgID            string `json:"orgId"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	ComplainantName  string `json:"complainantName"`
	ComplainantEmail string `json:"complainantEmail"`

	ReceivedDate       *time.Time `json:"receivedDate"`
	ResolutionDeadline *time.Time `json:"resolutionDeadline"`
	ResolvedDate       *time.Time `json:"resolvedDate"`

	FourWeekLetterSent  bool `json:"fourWeekLetterSent"`
	EightWeekLetterSent bool `json:"eightWeekLetterSent"`
	FinalResponseSent   bool `json:"finalResponseSent"`
}

func (req *complaintRequest) toModel() *model.Complaint {
	c := &model.Complaint{
		OrgID:               req.OrgID,
		Subject:             req.Subject,
		Description:         req.Description,
		ComplainantName:     req.ComplainantName,
		ComplainantEmail:    req.ComplainantEmail,
		ResolutionDeadline:  req.ResolutionDeadline,
		ResolvedDate:        req.ResolvedDate,
		FourWeekLetterSent:  req.FourWeekLetterSent,
		EightWeekLetterSent: req.EightWeekLetterSent,
		FinalResponseSent:   req.FinalResponseSent,
	}
	if req.ReceivedDate != nil {
		c.ReceivedDate = *req.ReceivedDate
	}
	return c
}

type complaintResponse struct {
	ID               int64  `json:"id"`
	Reference        string `json:"reference"`
	OrgID            string `json:"orgId"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	ComplainantName  string `json:"complainantName"`
	ComplainantEmail string `json:"complainantEmail"`
	Status           string `json:"status"`

	ReceivedDate       string  `json:"receivedDate"`
	ResolutionDeadline *string `json:"resolutionDeadline"`
	ResolvedDate       *string `json:"resolvedDate"`

	FourWeekLetterSent  bool `json:"fourWeekLetterSent"`
	EightWeekLetterSent bool `json:"eightWeekLetterSent"`
	FinalResponseSent   bool `json:"finalResponseSent"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeFormat)
	return &s
}

func toComplaintResponse(c *model.Complaint) complaintResponse {
	return complaintResponse{
		ID:                  c.ID,
		Reference:           c.Reference,
		OrgID:               c.OrgID,
		Subject:             c.Subject,
		Description:         c.Description,
		ComplainantName:     c.ComplainantName,
		ComplainantEmail:    c.ComplainantEmail,
		Status:              c.Status().String(),
		ReceivedDate:        c.ReceivedDate.Format(timeFormat),
		ResolutionDeadline:  formatOptionalTime(c.ResolutionDeadline),
		ResolvedDate:        formatOptionalTime(c.ResolvedDate),
		FourWeekLetterSent:  c.FourWeekLetterSent,
		EightWeekLetterSent: c.EightWeekLetterSent,
		FinalResponseSent:   c.FinalResponseSent,
		CreatedAt:           c.CreatedAt.Format(timeFormat),
		UpdatedAt:           c.UpdatedAt.Format(timeFormat),
	}
}

func complaintID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid complaint ID")
	}
	return id, nil
}

func (s *Server) listComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := s.uc.Complaint.ListComplaints(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := make([]complaintResponse, len(complaints))
	for i, c := range complaints {
		resp[i] = toComplaintResponse(c)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) createComplaint(w http.ResponseWriter, r *http.Request) {
	var req complaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode complaint request"), http.StatusBadRequest)
		return
	}

	created, err := s.uc.Complaint.CreateComplaint(r.Context(), req.toModel())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, toComplaintResponse(created))
}

func (s *Server) getComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := complaintID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	c, err := s.uc.Complaint.GetComplaint(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toComplaintResponse(c))
}

func (s *Server) updateComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := complaintID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var req complaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode complaint request"), http.StatusBadRequest)
		return
	}

	c := req.toModel()
	c.ID = id

	updated, err := s.uc.Complaint.UpdateComplaint(r.Context(), c)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toComplaintResponse(updated))
}

func (s *Server) deleteComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := complaintID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if err := s.uc.Complaint.DeleteComplaint(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// complaintDeadline evaluates the deadline position at the time given by
// the optional "at" query parameter (RFC3339), defaulting to now
func (s *Server) complaintDeadline(w http.ResponseWriter, r *http.Request) {
	id, err := complaintID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	if at := r.URL.Query().Get("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid at parameter"), http.StatusBadRequest)
			return
		}
		now = parsed
	}

	view, err := s.uc.Complaint.Deadline(r.Context(), id, now)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) markLetterSent(w http.ResponseWriter, r *http.Request) {
	id, err := complaintID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	kind, err := types.ParseMilestoneKind(chi.URLParam(r, "kind"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid milestone kind"), http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Complaint.MarkLetterSent(r.Context(), id, kind)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, toComplaintResponse(updated))
}
