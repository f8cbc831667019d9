// Package httpapi exposes the formatter over HTTP.
//
// Routes:
//
//	GET  /format?value=&locale=&style=&decimals=
//	POST /format        {"value": ..., "locale": ..., "style": ..., "decimals": ...}
//	GET  /locales
//	GET  /locales/{id}
//	GET  /healthz
//
// Cross-origin requests are allowed from any origin by default.
package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/goliatone/go-numfmt"
)

const maxBodyBytes = 1 << 20

// Handler serves the formatting API.
type Handler struct {
	formatter      *numfmt.Formatter
	logger         log.FieldLogger
	allowedOrigins []string
}

// Option configures a Handler.
type Option func(*Handler)

// WithAllowedOrigins sets the origins allowed to call the API from a browser.
// No origins disables cross-origin headers altogether.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) {
		h.allowedOrigins = origins
	}
}

// New creates a Handler. A nil logger discards output. Any origin may call
// the API unless WithAllowedOrigins says otherwise.
func New(formatter *numfmt.Formatter, logger log.FieldLogger, opts ...Option) *Handler {
	if logger == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	h := &Handler{
		formatter:      formatter,
		logger:         logger,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router builds the chi router with request-id, recovery, logging and CORS
// middleware installed.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	if len(h.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.health)
	r.Get("/format", h.formatQuery)
	r.Post("/format", h.formatBody)
	r.Route("/locales", func(r chi.Router) {
		r.Get("/", h.listLocales)
		r.Get("/{id}", h.getLocale)
	})

	return r
}

type formatResponse struct {
	Input     inputEcho `json:"input"`
	Formatted string    `json:"formatted"`
}

type inputEcho struct {
	Value    float64      `json:"value"`
	Locale   string       `json:"locale"`
	Style    numfmt.Style `json:"style"`
	Decimals int          `json:"decimals"`
}

type localesResponse struct {
	Locales []string `json:"locales"`
}

type localeResponse struct {
	numfmt.Profile
	Currency string `json:"currency,omitempty"`
	Language string `json:"language,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ALIVE")
}

func (h *Handler) formatQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var value, decimals any
	if query.Has("value") {
		value = query.Get("value")
	}
	if query.Has("decimals") {
		decimals = query.Get("decimals")
	}

	h.format(w, r, value, query.Get("locale"), query.Get("style"), decimals)
}

func (h *Handler) formatBody(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	// A body that is not a JSON object is treated as an empty one.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		payload = map[string]any{}
	}

	h.format(w, r, payload["value"], textField(payload["locale"]), textField(payload["style"]), payload["decimals"])
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request, rawValue any, locale, style string, rawDecimals any) {
	decimals, err := numfmt.ParseDecimals(rawDecimals)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	value, err := numfmt.ParseValue(rawValue)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	result, err := h.formatter.Format(numfmt.Request{
		Value:    value,
		Locale:   locale,
		Style:    style,
		Decimals: decimals,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, formatResponse{
		Input: inputEcho{
			Value:    result.Value,
			Locale:   result.Locale,
			Style:    result.Style,
			Decimals: result.Decimals,
		},
		Formatted: result.Formatted,
	})
}

func (h *Handler) listLocales(w http.ResponseWriter, _ *http.Request) {
	locales := h.formatter.Locales()
	if locales == nil {
		locales = []string{}
	}
	writeJSON(w, http.StatusOK, localesResponse{Locales: locales})
}

func (h *Handler) getLocale(w http.ResponseWriter, r *http.Request) {
	profile, err := h.formatter.Registry().Lookup(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, localeResponse{
		Profile:  profile,
		Currency: profile.CurrencyCode(),
		Language: profile.LanguageTag(),
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if numfmt.IsInputError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.WithFields(log.Fields{
		"request_id": RequestIDFromContext(r.Context()),
		"error":      err.Error(),
	}).Error("format failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func textField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
