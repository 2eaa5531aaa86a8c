package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"

	"github.com/rl1809/warehouse-ledger/internal/adapter/export"
	"github.com/rl1809/warehouse-ledger/internal/adapter/storage"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ledger := service.NewLedgerService(
		storage.NewMemoryAdapter(),
		storage.NewMemoryActivityLog(storage.DefaultActivityCapacity),
		storage.NewMemoryIdempotency(),
		nil,
	)
	h := NewHTTPHandler(ledger, nil, 80)
	h.now = func() time.Time { return fixedNow }
	return NewRouter(h, RouterConfig{CORSOrigin: "http://localhost:4200", MetricsEnabled: true})
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func createWarehouse(t *testing.T, srv http.Handler, name string, capacity int) WarehouseResponse {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/warehouses", map[string]any{
		"name": name, "location": "Dock " + name, "maxCapacity": capacity,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create warehouse: status %d body %s", rec.Code, rec.Body.String())
	}
	return decodeBody[WarehouseResponse](t, rec)
}

func createItem(t *testing.T, srv http.Handler, warehouseID, sku string, qty int) ItemResponse {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/items", map[string]any{
		"sku": sku, "name": "Item " + sku, "category": "Hardware", "quantity": qty, "warehouseId": warehouseID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item: status %d body %s", rec.Code, rec.Body.String())
	}
	return decodeBody[ItemResponse](t, rec)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected health reply %d %s", rec.Code, rec.Body.String())
	}
}

func TestWarehouseLifecycle(t *testing.T) {
	srv := newTestServer(t)
	w := createWarehouse(t, srv, "North", 100)
	if w.ID == "" || w.CurrentCapacity != 0 || w.AvailableCapacity != 100 {
		t.Errorf("unexpected warehouse %+v", w)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/warehouses/"+w.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/warehouses/"+w.ID, map[string]any{
		"name": "North Hub", "location": "Oslo", "maxCapacity": 150,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d body %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody[WarehouseResponse](t, rec); got.Name != "North Hub" || got.MaxCapacity != 150 {
		t.Errorf("unexpected update %+v", got)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/warehouses/search?name=hub", nil)
	if got := decodeBody[[]WarehouseResponse](t, rec); len(got) != 1 {
		t.Errorf("expected one search hit, got %+v", got)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/warehouses/"+w.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/warehouses", nil)
	if got := decodeBody[[]WarehouseResponse](t, rec); len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestErrorResponses(t *testing.T) {
	srv := newTestServer(t)
	w := createWarehouse(t, srv, "North", 10)
	createItem(t, srv, w.ID, "SKU-1", 8)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"missing warehouse", http.MethodGet, "/api/warehouses/nope", nil,
			http.StatusNotFound, "Warehouse not found with id: nope"},
		{"duplicate name", http.MethodPost, "/api/warehouses",
			map[string]any{"name": "North", "location": "Oslo", "maxCapacity": 5},
			http.StatusConflict, "Warehouse with name 'North' already exists"},
		{"over capacity", http.MethodPost, "/api/items",
			map[string]any{"sku": "SKU-2", "name": "Bolt", "quantity": 3, "warehouseId": w.ID},
			http.StatusUnprocessableEntity, ""},
		{"delete non-empty", http.MethodDelete, "/api/warehouses/" + w.ID, nil,
			http.StatusConflict, ""},
		{"bad limit", http.MethodGet, "/api/activity?limit=x", nil,
			http.StatusBadRequest, "limit must be an integer"},
		{"bad threshold", http.MethodGet, "/api/dashboard?threshold=-1", nil,
			http.StatusBadRequest, "threshold must be a non-negative number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			body := decodeBody[ErrorResponse](t, rec)
			if body.Status != tt.wantStatus || body.Error != http.StatusText(tt.wantStatus) {
				t.Errorf("unexpected error body %+v", body)
			}
			if body.Path != strings.SplitN(tt.path, "?", 2)[0] || !body.Timestamp.Equal(fixedNow) {
				t.Errorf("unexpected path or timestamp %+v", body)
			}
			if tt.wantMsg != "" && body.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, body.Message)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/warehouses", map[string]any{
		"name": "  ", "location": "", "maxCapacity": 0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody[ErrorResponse](t, rec)
	for _, field := range []string{"name", "location", "maxCapacity"} {
		if body.ValidationErrors[field] == "" {
			t.Errorf("expected validation error for %s, got %+v", field, body.ValidationErrors)
		}
	}
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody[ErrorResponse](t, rec); !strings.HasPrefix(body.Message, "invalid request body") {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestItemRoutes(t *testing.T) {
	srv := newTestServer(t)
	w := createWarehouse(t, srv, "North", 100)
	item := createItem(t, srv, w.ID, "SKU-1", 10)
	createItem(t, srv, w.ID, "BOLT-9", 5)

	rec := doJSON(t, srv, http.MethodGet, "/api/items/search?searchTerm=sku&warehouseId="+w.ID, nil)
	if got := decodeBody[[]ItemResponse](t, rec); len(got) != 1 || got[0].ID != item.ID {
		t.Errorf("unexpected search result %+v", got)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/items/warehouse/"+w.ID, nil)
	if got := decodeBody[[]ItemResponse](t, rec); len(got) != 2 {
		t.Errorf("expected 2 items in warehouse, got %d", len(got))
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/items/categories", nil)
	if got := decodeBody[[]string](t, rec); len(got) != 1 || got[0] != "Hardware" {
		t.Errorf("unexpected categories %+v", got)
	}

	rec = doJSON(t, srv, http.MethodPut, "/api/items/"+item.ID, map[string]any{
		"name": "Renamed", "quantity": 12, "warehouseId": w.ID,
	})
	if got := decodeBody[ItemResponse](t, rec); rec.Code != http.StatusOK || got.Quantity != 12 || got.WarehouseName != "North" {
		t.Errorf("unexpected update %d %+v", rec.Code, got)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/api/items/"+item.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/api/items/"+item.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestTransferRoute(t *testing.T) {
	srv := newTestServer(t)
	w1 := createWarehouse(t, srv, "W1", 100)
	w2 := createWarehouse(t, srv, "W2", 50)
	item := createItem(t, srv, w1.ID, "SKU-1", 40)

	body := TransferHTTPRequest{
		ItemID:                 item.ID,
		SourceWarehouseID:      w1.ID,
		DestinationWarehouseID: w2.ID,
		Quantity:               15,
	}

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/items/transfer", &buf)
	req.Header.Set(idempotencyKeyHeader, "abc")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("transfer: status %d body %s", rec.Code, rec.Body.String())
	}
	res := decodeBody[TransferHTTPResponse](t, rec)
	if res.Mode != "split" || res.Source == nil || res.Source.Quantity != 25 || res.Destination.Quantity != 15 {
		t.Errorf("unexpected transfer response %+v", res)
	}

	// the header key is honoured on replay
	buf.Reset()
	_ = json.NewEncoder(&buf).Encode(body)
	req = httptest.NewRequest(http.MethodPost, "/api/items/transfer", &buf)
	req.Header.Set(idempotencyKeyHeader, "abc")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on replay, got %d", rec.Code)
	}

	body.Quantity = 51
	rec = doJSON(t, srv, http.MethodPost, "/api/items/transfer", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for quantity above stock, got %d", rec.Code)
	}

	body.Quantity = 20
	body.SourceWarehouseID = w2.ID
	rec = doJSON(t, srv, http.MethodPost, "/api/items/transfer", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for wrong source, got %d", rec.Code)
	}
}

func TestDashboardAndActivity(t *testing.T) {
	srv := newTestServer(t)
	w := createWarehouse(t, srv, "North", 10)
	createItem(t, srv, w.ID, "SKU-1", 9)

	rec := doJSON(t, srv, http.MethodGet, "/api/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d", rec.Code)
	}
	report := decodeBody[service.DashboardReport](t, rec)
	if report.TotalQuantity != 9 || report.OverallUtilization != 90 || len(report.NearCapacity) != 1 {
		t.Errorf("unexpected dashboard %+v", report)
	}
	if len(report.RecentActivity) != 2 {
		t.Errorf("expected 2 recent activities, got %d", len(report.RecentActivity))
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/dashboard?threshold=95", nil)
	if report := decodeBody[service.DashboardReport](t, rec); len(report.NearCapacity) != 0 || report.Threshold != 95 {
		t.Errorf("expected no warehouse above 95, got %+v", report.NearCapacity)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/activity?limit=1", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "SKU-1") {
		t.Errorf("unexpected activity %d %s", rec.Code, rec.Body.String())
	}
}

func TestExportWorkbook(t *testing.T) {
	srv := newTestServer(t)
	createWarehouse(t, srv, "North", 10)

	rec := doJSON(t, srv, http.MethodGet, "/api/export.xlsx", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != export.ContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	want := `attachment; filename="inventory_20250314_093000.xlsx"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("expected a zip payload")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/warehouses", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantHTTP int
		wantGRPC codes.Code
		wantMsg  string
	}{
		{domain.NotFoundf("gone"), http.StatusNotFound, codes.NotFound, "gone"},
		{domain.Conflictf("taken"), http.StatusConflict, codes.AlreadyExists, "taken"},
		{domain.InvalidArgumentf("bad"), http.StatusBadRequest, codes.InvalidArgument, "bad"},
		{domain.InvalidStatef("moved"), http.StatusBadRequest, codes.FailedPrecondition, "moved"},
		{domain.CapacityExceededf("full"), http.StatusUnprocessableEntity, codes.ResourceExhausted, "full"},
		{fmt.Errorf("create item: %w", domain.NotFoundf("wrapped")), http.StatusNotFound, codes.NotFound, "wrapped"},
		{errors.New("dial tcp: connection refused"), http.StatusInternalServerError, codes.Internal, internalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			kind := domain.KindOf(tt.err)
			if got := httpStatus(kind); got != tt.wantHTTP {
				t.Errorf("http: expected %d, got %d", tt.wantHTTP, got)
			}
			if got := grpcCode(kind); got != tt.wantGRPC {
				t.Errorf("grpc: expected %s, got %s", tt.wantGRPC, got)
			}
			if got := publicMessage(tt.err); got != tt.wantMsg {
				t.Errorf("message: expected %q, got %q", tt.wantMsg, got)
			}
		})
	}
}
