package assist

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/chat", h.Chat)
	r.Post("/start-trial", h.StartTrial)
	r.Post("/add_faq", h.AddFAQ)
	r.Get("/faqs/unanswered", h.Unanswered)
}
