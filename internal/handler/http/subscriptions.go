package http

import (
	"net/http"

	"github.com/MKhiriev/go-newsletter/internal/app"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/models"
)

// maxFormSize limits the size of a subscription form body.
const maxFormSize = 64 << 10

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg(app.MsgInvalidForm)
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	form := models.SubscriptionForm{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}

	if _, err := h.services.SubscriptionService.Subscribe(ctx, form); err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during subscription")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("subscription rejected")
		}
		http.Error(w, messageFromStatus(status), status)
		return
	}

	w.Header().Set("Content-Length", "0")
	w.WriteHeader(http.StatusOK)
}
