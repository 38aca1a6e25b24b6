package rorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fixmarkt/server/pkg/idwrap"
	"fixmarkt/server/pkg/ordering"
	"fixmarkt/server/pkg/service/sorder"

	"github.com/goccy/go-json"
)

// OrderServiceRPC exposes the position engine to the admin pages. The
// parameter surface is uniform across entities: entity tag, target id,
// optional scope key/value and order field.
type OrderServiceRPC struct {
	orders sorder.OrderService
	logger *slog.Logger
}

func New(orders sorder.OrderService, logger *slog.Logger) *OrderServiceRPC {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderServiceRPC{orders: orders, logger: logger}
}

// Routes returns the handler mounted under /catalog.order.v1/.
func (h *OrderServiceRPC) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /catalog.order.v1/Move", h.Move)
	mux.HandleFunc("POST /catalog.order.v1/Commit", h.Commit)
	mux.HandleFunc("POST /catalog.order.v1/CommitDevicesByBrand", h.CommitDevicesByBrand)
	mux.HandleFunc("POST /catalog.order.v1/CommitDevicesByType", h.CommitDevicesByType)
	return mux
}

type moveRequest struct {
	Entity     string `json:"entity"`
	ID         string `json:"id"`
	Direction  string `json:"direction"`
	ScopeKey   string `json:"scopeKey,omitempty"`
	ScopeValue string `json:"scopeValue,omitempty"`
	OrderField string `json:"orderField,omitempty"`
}

type commitRequest struct {
	Entity     string `json:"entity"`
	OrderedIDs string `json:"orderedIds"`
	ScopeKey   string `json:"scopeKey,omitempty"`
	ScopeValue string `json:"scopeValue,omitempty"`
	OrderField string `json:"orderField,omitempty"`
}

type deviceCommitRequest struct {
	OrderedIDs string `json:"orderedIds"`
}

type commitResponse struct {
	Updated int `json:"updated"`
}

func (h *OrderServiceRPC) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	entity, err := ordering.ParseEntity(req.Entity)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}
	direction, err := ordering.ParseDirection(req.Direction)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}
	id, err := idwrap.NewText(req.ID)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	err = h.orders.Move(r.Context(), sorder.MoveRequest{
		Entity:    entity,
		ID:        id,
		Direction: direction,
		Scope: ordering.ScopeRequest{
			ScopeKey:   req.ScopeKey,
			ScopeValue: req.ScopeValue,
			OrderField: req.OrderField,
		},
	})
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *OrderServiceRPC) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	entity, err := ordering.ParseEntity(req.Entity)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}
	ids, err := idwrap.NewTextList(req.OrderedIDs)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	updated, err := h.orders.Commit(r.Context(), sorder.CommitRequest{
		Entity:     entity,
		OrderedIDs: ids,
		Scope: ordering.ScopeRequest{
			ScopeKey:   req.ScopeKey,
			ScopeValue: req.ScopeValue,
			OrderField: req.OrderField,
		},
	})
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse{Updated: updated})
}

func (h *OrderServiceRPC) CommitDevicesByBrand(w http.ResponseWriter, r *http.Request) {
	h.deviceCommit(w, r, h.orders.CommitDevicesByBrand)
}

func (h *OrderServiceRPC) CommitDevicesByType(w http.ResponseWriter, r *http.Request) {
	h.deviceCommit(w, r, h.orders.CommitDevicesByType)
}

func (h *OrderServiceRPC) deviceCommit(w http.ResponseWriter, r *http.Request, commit func(context.Context, []idwrap.IDWrap) (int, error)) {
	var req deviceCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}
	ids, err := idwrap.NewTextList(req.OrderedIDs)
	if err != nil {
		h.writeError(w, r, err, http.StatusBadRequest)
		return
	}

	updated, err := commit(r.Context(), ids)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse{Updated: updated})
}

func (h *OrderServiceRPC) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ordering.ErrRecordNotFound):
		h.writeError(w, r, err, http.StatusNotFound)
	case errors.Is(err, ordering.ErrUnsupportedEntity),
		errors.Is(err, ordering.ErrUnknownScopeKey),
		errors.Is(err, ordering.ErrBadOrderField),
		errors.Is(err, ordering.ErrBadDirection):
		h.writeError(w, r, err, http.StatusBadRequest)
	default:
		h.logger.ErrorContext(r.Context(), "reorder failed", slog.String("error", err.Error()))
		h.writeError(w, r, errors.New("reorder did not take effect"), http.StatusInternalServerError)
	}
}

func (h *OrderServiceRPC) writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
