package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/rl1809/warehouse-ledger/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-ledger/internal/core/dashboard"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedLedgerServiceServer
	ledger    *service.LedgerService
	logger    *zap.Logger
	threshold float64
}

func NewGRPCHandler(ledger *service.LedgerService, logger *zap.Logger, threshold float64) *GRPCHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if threshold <= 0 {
		threshold = dashboard.DefaultThreshold
	}
	return &GRPCHandler{ledger: ledger, logger: logger, threshold: threshold}
}

func (h *GRPCHandler) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	res, err := h.ledger.Transfer(ctx, domain.TransferRequest{
		ItemID:                 req.ItemId,
		SourceWarehouseID:      req.SourceWarehouseId,
		DestinationWarehouseID: req.DestinationWarehouseId,
		Quantity:               int(req.Quantity),
		IdempotencyKey:         req.IdempotencyKey,
	})
	if err != nil {
		return nil, h.statusError("Transfer", err)
	}

	out := &pb.TransferResponse{
		Mode:        string(res.Mode),
		Quantity:    int32(res.Quantity),
		Destination: toPBItem(res.Destination),
	}
	if res.Source != nil {
		out.Source = toPBItem(*res.Source)
	}
	return out, nil
}

func (h *GRPCHandler) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.Item, error) {
	item, err := h.ledger.GetItem(ctx, req.Id)
	if err != nil {
		return nil, h.statusError("GetItem", err)
	}
	return toPBItem(*item), nil
}

func (h *GRPCHandler) SearchItems(ctx context.Context, req *pb.SearchItemsRequest) (*pb.SearchItemsResponse, error) {
	items, err := h.ledger.SearchItems(ctx, domain.ItemFilter{Term: req.Term, WarehouseID: req.WarehouseId})
	if err != nil {
		return nil, h.statusError("SearchItems", err)
	}
	out := &pb.SearchItemsResponse{Items: make([]*pb.Item, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, toPBItem(it))
	}
	return out, nil
}

func (h *GRPCHandler) GetWarehouse(ctx context.Context, req *pb.GetWarehouseRequest) (*pb.Warehouse, error) {
	w, err := h.ledger.GetWarehouse(ctx, req.Id)
	if err != nil {
		return nil, h.statusError("GetWarehouse", err)
	}
	return toPBWarehouse(*w), nil
}

func (h *GRPCHandler) ListWarehouses(ctx context.Context, req *pb.ListWarehousesRequest) (*pb.ListWarehousesResponse, error) {
	ws, err := h.ledger.SearchWarehouses(ctx, req.Name)
	if err != nil {
		return nil, h.statusError("ListWarehouses", err)
	}
	out := &pb.ListWarehousesResponse{Warehouses: make([]*pb.Warehouse, 0, len(ws))}
	for _, w := range ws {
		out.Warehouses = append(out.Warehouses, toPBWarehouse(w))
	}
	return out, nil
}

func (h *GRPCHandler) Dashboard(ctx context.Context, req *pb.DashboardRequest) (*pb.DashboardResponse, error) {
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = h.threshold
	}
	report, err := h.ledger.Dashboard(ctx, threshold)
	if err != nil {
		return nil, h.statusError("Dashboard", err)
	}

	out := &pb.DashboardResponse{
		TotalWarehouses:    int32(report.TotalWarehouses),
		TotalItems:         int32(report.TotalItems),
		TotalQuantity:      int64(report.TotalQuantity),
		OverallUtilization: report.OverallUtilization,
		Threshold:          report.Threshold,
		NearCapacity:       make([]*pb.Warehouse, 0, len(report.NearCapacity)),
		QuantityByCategory: make([]*pb.CategoryQuantity, 0, len(report.QuantityByCategory)),
	}
	for _, u := range report.NearCapacity {
		out.NearCapacity = append(out.NearCapacity, &pb.Warehouse{
			Id:                    u.ID,
			Name:                  u.Name,
			MaxCapacity:           int32(u.MaxCapacity),
			CurrentCapacity:       int32(u.CurrentCapacity),
			AvailableCapacity:     int32(u.AvailableCapacity),
			UtilizationPercentage: u.UtilizationPercentage,
			ItemCount:             int32(u.ItemCount),
		})
	}
	for _, c := range report.QuantityByCategory {
		out.QuantityByCategory = append(out.QuantityByCategory, &pb.CategoryQuantity{
			Category: c.Category,
			Quantity: int64(c.Quantity),
		})
	}
	return out, nil
}

func (h *GRPCHandler) statusError(method string, err error) error {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		h.logger.Error("rpc failed", zap.String("method", method), zap.Error(err))
	}
	return status.Error(grpcCode(kind), publicMessage(err))
}

func toPBItem(it domain.InventoryItem) *pb.Item {
	return &pb.Item{
		Id:              it.ID,
		Sku:             it.SKU,
		Name:            it.Name,
		Description:     it.Description,
		Category:        it.Category,
		Quantity:        int32(it.Quantity),
		StorageLocation: it.StorageLocation,
		WarehouseId:     it.WarehouseID,
		WarehouseName:   it.WarehouseName,
	}
}

func toPBWarehouse(w domain.Warehouse) *pb.Warehouse {
	return &pb.Warehouse{
		Id:                    w.ID,
		Name:                  w.Name,
		Location:              w.Location,
		MaxCapacity:           int32(w.MaxCapacity),
		CurrentCapacity:       int32(w.CurrentCapacity),
		AvailableCapacity:     int32(w.AvailableCapacity()),
		UtilizationPercentage: w.UtilizationPercentage(),
		ItemCount:             int32(w.ItemCount),
	}
}
