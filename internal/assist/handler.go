package assist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/assistbot/internal/logging"
)

const (
	defaultBusinessID = "default_business"
	defaultUserID     = "user"
)

type Handler struct {
	svc      Service
	registry *Registry
}

func NewHandler(svc Service, registry *Registry) *Handler {
	return &Handler{svc: svc, registry: registry}
}

// Chat — POST /chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message    string `json:"message"`
		BusinessID string `json:"business_id"`
		UserID     string `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if payload.BusinessID == "" {
		payload.BusinessID = defaultBusinessID
	}
	if payload.UserID == "" {
		payload.UserID = defaultUserID
	}

	if !h.registry.IsRegistered(payload.BusinessID) {
		writeJSON(w, http.StatusOK, map[string]string{"response": SignUpPrompt})
		return
	}

	reply, err := h.svc.GenerateResponse(r.Context(), payload.Message, payload.BusinessID, payload.UserID)
	if err != nil {
		h.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// StartTrial — POST /start-trial, form encoded.
func (h *Handler) StartTrial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_, confirmation, err := h.registry.Register(
		r.PostFormValue("business_name"),
		r.PostFormValue("order_tracking") == "yes",
		r.PostFormValue("orders"),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(confirmation))
}

// AddFAQ — POST /add_faq
func (h *Handler) AddFAQ(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if err := h.svc.AddFAQ(r.Context(), payload.Question, payload.Answer); err != nil {
		if errors.Is(err, ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": FAQRequiredError})
			return
		}
		h.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": FAQAddedMessage})
}

// Unanswered — GET /faqs/unanswered
func (h *Handler) Unanswered(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.UnansweredQuestions(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	logger := logging.Component("http")
	logger.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "processing error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
