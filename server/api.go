package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/output"
	"github.com/alovak/testcards/server/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is a HTTP API for the card generator
type API struct {
	svc    *Service
	logger *slog.Logger
}

func NewAPI(svc *Service, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		svc:    svc,
		logger: logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/types", a.listTypes)
	r.Post("/cards", a.issueCards)
	r.Get("/validate", a.validate)
}

func (a *API) listTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Types())
}

// issueCards generates cards. Query: type, count, years, unique, format.
func (a *API) issueCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := output.ParseFormat(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if q.Get("format") == "" {
		format = output.FormatJSON
	}

	req := models.IssueCards{Type: q.Get("type"), Count: 1}
	if v := q.Get("count"); v != "" {
		if req.Count, err = strconv.Atoi(v); err != nil {
			http.Error(w, "count must be an integer", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("years"); v != "" {
		if req.Years, err = strconv.Atoi(v); err != nil {
			http.Error(w, "years must be an integer", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("unique"); v != "" {
		if req.Unique, err = strconv.ParseBool(v); err != nil {
			http.Error(w, "unique must be a boolean", http.StatusBadRequest)
			return
		}
	}

	batch, err := a.svc.IssueCards(req)
	if err != nil {
		if errors.Is(err, cardgen.ErrUnknownCardType) || errors.Is(err, ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	a.logger.Debug("cards issued",
		slog.String("batch_id", batch.ID),
		slog.Int("count", batch.Count),
		slog.String("first", cardgen.MaskPAN(batch.Cards[0].Number)),
	)

	if format == output.FormatJSON {
		writeJSON(w, http.StatusCreated, batch)
		return
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, format, batch.Cards); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Batch-Id", batch.ID)
	w.WriteHeader(http.StatusCreated)
	w.Write(buf.Bytes())
}

// validate checks a card number. Query: number, expiry (optional, MM/YY or MMYY).
func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		http.Error(w, "number is required", http.StatusBadRequest)
		return
	}

	res, err := a.svc.Validate(number, r.URL.Query().Get("expiry"))
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	a.logger.Debug("card validated",
		slog.String("number", cardgen.MaskPAN(number)),
		slog.Bool("valid", res.Valid),
	)
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
