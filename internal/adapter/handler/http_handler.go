package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-ledger/internal/adapter/export"
	"github.com/rl1809/warehouse-ledger/internal/core/dashboard"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
	"github.com/rl1809/warehouse-ledger/internal/platform/metrics"
)

const (
	defaultActivityLimit  = 10
	idempotencyKeyHeader  = "Idempotency-Key"
	maxRequestBodyBytes   = 1 << 20
	exportFileNamePattern = "inventory_20060102_150405.xlsx"
)

type HTTPHandler struct {
	ledger    *service.LedgerService
	logger    *zap.Logger
	threshold float64
	now       func() time.Time
}

func NewHTTPHandler(ledger *service.LedgerService, logger *zap.Logger, threshold float64) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if threshold <= 0 {
		threshold = dashboard.DefaultThreshold
	}
	return &HTTPHandler{ledger: ledger, logger: logger, threshold: threshold, now: time.Now}
}

type RouterConfig struct {
	CORSOrigin     string
	MetricsEnabled bool
}

// NewRouter wires the REST API, health and metrics endpoints.
func NewRouter(h *HTTPHandler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	if cfg.CORSOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{cfg.CORSOrigin},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", idempotencyKeyHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/health", h.HealthCheck)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	r.Route("/api", h.MountRoutes)
	return r
}

func (h *HTTPHandler) MountRoutes(r chi.Router) {
	r.Route("/warehouses", func(r chi.Router) {
		r.Get("/", h.ListWarehouses)
		r.Post("/", h.CreateWarehouse)
		r.Get("/search", h.SearchWarehouses)
		r.Get("/{id}", h.GetWarehouse)
		r.Put("/{id}", h.UpdateWarehouse)
		r.Delete("/{id}", h.DeleteWarehouse)
	})
	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Post("/", h.CreateItem)
		r.Get("/search", h.SearchItems)
		r.Get("/categories", h.ListCategories)
		r.Post("/transfer", h.Transfer)
		r.Get("/warehouse/{warehouseId}", h.ListItemsByWarehouse)
		r.Get("/{id}", h.GetItem)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.DeleteItem)
	})
	r.Get("/dashboard", h.Dashboard)
	r.Get("/activity", h.RecentActivity)
	r.Get("/export.xlsx", h.ExportWorkbook)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	ws, err := h.ledger.ListWarehouses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWarehouseResponses(ws))
}

func (h *HTTPHandler) SearchWarehouses(w http.ResponseWriter, r *http.Request) {
	ws, err := h.ledger.SearchWarehouses(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWarehouseResponses(ws))
}

func (h *HTTPHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	wh, err := h.ledger.GetWarehouse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWarehouseResponse(*wh))
}

func (h *HTTPHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var in service.WarehouseInput
	if !h.decode(w, r, &in) {
		return
	}
	wh, err := h.ledger.CreateWarehouse(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWarehouseResponse(*wh))
}

func (h *HTTPHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	var in service.WarehouseInput
	if !h.decode(w, r, &in) {
		return
	}
	wh, err := h.ledger.UpdateWarehouse(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWarehouseResponse(*wh))
}

func (h *HTTPHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteWarehouse(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledger.ListItems(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

func (h *HTTPHandler) ListItemsByWarehouse(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledger.ListItemsByWarehouse(r.Context(), chi.URLParam(r, "warehouseId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

func (h *HTTPHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.ledger.SearchItems(r.Context(), domain.ItemFilter{
		Term:        q.Get("searchTerm"),
		WarehouseID: q.Get("warehouseId"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.ledger.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *HTTPHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.ledger.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

func (h *HTTPHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in service.NewItem
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.ledger.CreateItem(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(*item))
}

func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var in service.ItemChanges
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.ledger.UpdateItem(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item))
}

func (h *HTTPHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferHTTPRequest
	if !h.decode(w, r, &req) {
		return
	}
	key := req.IdempotencyKey
	if key == "" {
		key = r.Header.Get(idempotencyKeyHeader)
	}

	res, err := h.ledger.Transfer(r.Context(), domain.TransferRequest{
		ItemID:                 req.ItemID,
		SourceWarehouseID:      req.SourceWarehouseID,
		DestinationWarehouseID: req.DestinationWarehouseID,
		Quantity:               req.Quantity,
		IdempotencyKey:         key,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransferResponse(*res))
}

func (h *HTTPHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	threshold := h.threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			h.writeError(w, r, domain.InvalidArgumentf("threshold must be a non-negative number"))
			return
		}
		threshold = v
	}

	report, err := h.ledger.Dashboard(r.Context(), threshold)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *HTTPHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, domain.InvalidArgumentf("limit must be an integer"))
			return
		}
		limit = v
	}

	out, err := h.ledger.RecentActivity(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	snap, err := h.ledger.Snapshot(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	buf := &bytes.Buffer{}
	if err := export.WriteWorkbook(buf, snap); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, h.now().UTC().Format(exportFileNamePattern)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// decode reads a JSON body into dst, replying 400 when it is malformed.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, r, domain.InvalidArgumentf("invalid request body: %s", strings.TrimPrefix(err.Error(), "json: ")))
		return false
	}
	return true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := httpStatus(kind)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}

	writeJSON(w, status, ErrorResponse{
		Timestamp:        h.now().UTC(),
		Status:           status,
		Error:            http.StatusText(status),
		Message:          publicMessage(err),
		Path:             r.URL.Path,
		ValidationErrors: domain.FieldErrors(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
