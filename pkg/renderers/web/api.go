package web

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/render"
	"github.com/goliatone/go-profileform/pkg/validation"
)

const maxAPIBody = 64 << 10

// submissionRequest mirrors model.Record but keeps gender as free text so
// labels ("Female") are accepted alongside codes.
type submissionRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Gender      string   `json:"gender"`
	DateOfBirth string   `json:"dateOfBirth"`
	TechStack   []string `json:"techStack"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
}

type issuesResponse struct {
	Issues []validation.Issue `json:"issues"`
}

// handleSubmitAPI validates a JSON record and, when valid, waits for the
// submitter before answering 201 with the rendered summary. The wait is not
// cut short when the client goes away.
func (h *Handler) handleSubmitAPI(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body: " + err.Error()})
		return
	}

	state, err := h.apiState(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	state, result, err := formstate.BeginSubmit(state, h.now())
	if err != nil {
		h.logger.Error("api begin submit", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "submit failed"})
		return
	}
	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, issuesResponse{Issues: result.Issues})
		return
	}

	staged, _ := state.Staged()
	if err := h.submitter.Submit(context.WithoutCancel(r.Context()), staged); err != nil {
		h.logger.Warn("api submit failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	state, notice, err := formstate.CompleteSubmit(state)
	if err != nil {
		h.logger.Error("api complete submit", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "submit failed"})
		return
	}
	snapshot, _ := state.Snapshot()

	renderer, err := h.registry.Get("json")
	if err != nil {
		renderer = render.JSONRenderer{}
	}
	body, err := renderer.Render(r.Context(), h.presenter.Present(snapshot), render.RenderOptions{
		Notice: notice.Title + ": " + notice.Description,
	})
	if err != nil {
		h.logger.Error("api render summary", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to render summary"})
		return
	}

	h.logger.Info("api submission accepted", zap.Time("submitted_at", snapshot.SubmittedAt()))
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(body)
}

func (h *Handler) apiState(req submissionRequest) (formstate.State, error) {
	state := formstate.New()
	scalars := []struct {
		name  string
		value string
	}{
		{model.FieldFirstName, req.FirstName},
		{model.FieldLastName, req.LastName},
		{model.FieldEmail, req.Email},
		{model.FieldPhoneNumber, req.PhoneNumber},
		{model.FieldGender, req.Gender},
		{model.FieldDateOfBirth, req.DateOfBirth},
	}
	for _, field := range scalars {
		next, err := formstate.SetField(state, field.name, sanitizeInput(field.value))
		if err != nil {
			return formstate.State{}, err
		}
		state = next
	}
	for _, tag := range req.TechStack {
		state, _ = formstate.AddTag(state, sanitizeInput(tag))
	}
	return state, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
