package site

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/pkg/log"
)

type Handler struct {
	renderer *Renderer
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(renderer *Renderer) *Handler {
	handler := &Handler{
		renderer: renderer,
		mux:      &http.ServeMux{},
	}

	// Register routes
	for _, page := range Pages() {
		pattern := "GET " + page.Path
		if page.Path == "/" {
			pattern = "GET /{$}"
		}

		handler.mux.HandleFunc(pattern, handler.servePage(page))
	}

	return handler
}

func (h *Handler) servePage(page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Render into a buffer so a template failure can still be answered with a 500
		var buff bytes.Buffer

		if err := h.renderer.Render(&buff, page); err != nil {
			slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)), slog.String("page", page.Name))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if _, err := buff.WriteTo(w); err != nil {
			slog.ErrorContext(ctx, "could not write response", log.Error(errors.WithStack(err)), slog.String("page", page.Name))
		}
	}
}

var _ http.Handler = &Handler{}
