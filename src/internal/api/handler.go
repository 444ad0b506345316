package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ce-fello/relief-hub/src/internal/api/apiErrors"
	"github.com/ce-fello/relief-hub/src/internal/model"
	"github.com/ce-fello/relief-hub/src/internal/relief"
	"github.com/ce-fello/relief-hub/src/internal/service"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc     *service.Service
	log     *zap.Logger
	timeout time.Duration
}

func NewHandler(svc *service.Service, logger *zap.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{svc: svc, log: logger, timeout: timeout}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.withTimeout(h.currentUser))
		r.Post("/login", h.withTimeout(h.login))
		r.Post("/register", h.withTimeout(h.register))
		r.Post("/logout", h.withTimeout(h.logout))
	})

	r.Route("/requests", func(r chi.Router) {
		r.Get("/", h.withTimeout(h.listRequests))
		r.Post("/", h.withTimeout(h.submitRequest))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.withTimeout(h.getRequest))
			r.Post("/approve", h.withTimeout(h.approveRequest))
			r.Post("/reject", h.withTimeout(h.rejectRequest))
			r.Post("/offers", h.withTimeout(h.addOffer))
			r.Post("/comments", h.withTimeout(h.addComment))
			r.Post("/volunteers", h.withTimeout(h.assignVolunteer))
			r.Post("/volunteers/{volunteerId}/status", h.withTimeout(h.updateAssignmentStatus))
		})
	})

	r.Get("/volunteers", h.withTimeout(h.listVolunteers))
	r.Post("/volunteers", h.withTimeout(h.registerVolunteer))
	r.Get("/dashboard", h.withTimeout(h.dashboard))
	r.Get("/resources", h.resources)
	r.Get("/categories", h.categories)
}

func (h *Handler) withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"user": h.svc.CurrentUser()})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in relief.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}
	u, err := h.svc.Login(r.Context(), in)
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in relief.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}
	u, err := h.svc.Register(r.Context(), in)
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": u})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	q := relief.Query{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": h.svc.VisibleRequests(q)})
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.GetRequest(chi.URLParam(r, "id"))
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"request": req})
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	var d relief.RequestDraft
	if !decodeBody(w, r, &d) {
		return
	}
	req, err := h.svc.SubmitRequest(r.Context(), d)
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"request": req})
}

func (h *Handler) approveRequest(w http.ResponseWriter, r *http.Request) {
	req, applied, err := h.svc.ApproveRequest(r.Context(), chi.URLParam(r, "id"))
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) rejectRequest(w http.ResponseWriter, r *http.Request) {
	req, applied, err := h.svc.RejectRequest(r.Context(), chi.URLParam(r, "id"))
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) addOffer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
		Contact string `json:"contact"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	req, applied, err := h.svc.AddOffer(r.Context(), chi.URLParam(r, "id"), body.Message, body.Contact)
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	req, applied, err := h.svc.AddComment(r.Context(), chi.URLParam(r, "id"), body.Message)
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) assignVolunteer(w http.ResponseWriter, r *http.Request) {
	var d relief.AssignmentDraft
	if !decodeBody(w, r, &d) {
		return
	}
	req, applied, err := h.svc.AssignVolunteer(r.Context(), chi.URLParam(r, "id"), d)
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) updateAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	status, err := model.ParseAssignmentStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, apiErrors.ValidationError, err.Error())
		return
	}
	req, applied, err := h.svc.UpdateAssignmentStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "volunteerId"), status)
	h.writeOutcome(w, req, applied, err)
}

func (h *Handler) listVolunteers(w http.ResponseWriter, r *http.Request) {
	vols, err := h.svc.Volunteers(relief.VolunteerQuery{
		Search: r.URL.Query().Get("search"),
		Skill:  r.URL.Query().Get("skill"),
	})
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"volunteers": vols})
}

func (h *Handler) registerVolunteer(w http.ResponseWriter, r *http.Request) {
	var d relief.VolunteerDraft
	if !decodeBody(w, r, &d) {
		return
	}
	v, err := h.svc.RegisterVolunteer(r.Context(), d)
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"volunteer": v})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard()
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) resources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"emergency":    relief.EmergencyResources(),
		"preparedness": relief.PreparednessGuides(),
		"skills":       relief.SkillCategories,
	})
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	type category struct {
		Value model.Category `json:"value"`
		Label string         `json:"label"`
	}
	out := make([]category, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, category{Value: c, Label: c.Label()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// writeOutcome answers a request mutation. A mutation that changed nothing
// still succeeds, with applied=false and no request body.
func (h *Handler) writeOutcome(w http.ResponseWriter, req model.HelpRequest, applied bool, err error) {
	if err != nil {
		h.handleSvcError(w, err)
		return
	}
	if !applied {
		writeJSON(w, http.StatusOK, map[string]any{"applied": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"applied": true, "request": req})
}

// decodeBody reports a malformed body or an unknown enum value as a validation error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid body"
		if errors.Is(err, model.ErrInvalidEnum) {
			msg = err.Error()
		}
		writeError(w, http.StatusBadRequest, apiErrors.ValidationError, msg)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, errCode apiErrors.ErrorCode, message string) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{"code": errCode, "message": message},
	})
}

func (h *Handler) handleSvcError(w http.ResponseWriter, err error) {
	e := apiErrors.From(err)
	switch e.Code {
	case apiErrors.ValidationError:
		writeError(w, http.StatusBadRequest, e.Code, e.Message)
	case apiErrors.Forbidden:
		writeError(w, http.StatusForbidden, e.Code, e.Message)
	case apiErrors.NotFound:
		writeError(w, http.StatusNotFound, e.Code, e.Message)
	case apiErrors.NoCandidate:
		writeError(w, http.StatusConflict, e.Code, e.Message)
	default:
		h.log.Error("handleSvcError: unexpected error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, apiErrors.InternalError, e.Message)
	}
}
