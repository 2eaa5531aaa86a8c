package handler

import (
	"context"
	"math"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/rl1809/warehouse-ledger/internal/adapter/handler/pb"
	"github.com/rl1809/warehouse-ledger/internal/adapter/storage"
	"github.com/rl1809/warehouse-ledger/internal/core/service"
)

func newTestGRPC(t *testing.T) (pb.LedgerServiceClient, *service.LedgerService) {
	t.Helper()
	ledger := service.NewLedgerService(
		storage.NewMemoryAdapter(),
		storage.NewMemoryActivityLog(storage.DefaultActivityCapacity),
		storage.NewMemoryIdempotency(),
		nil,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterLedgerServiceServer(srv, NewGRPCHandler(ledger, nil, 0))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return pb.NewLedgerServiceClient(conn), ledger
}

func TestGRPC_TransferAndReads(t *testing.T) {
	client, ledger := newTestGRPC(t)
	ctx := context.Background()

	w1, err := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W1", Location: "A", MaxCapacity: 100})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w2, err := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W2", Location: "B", MaxCapacity: 50})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	item, err := ledger.CreateItem(ctx, service.NewItem{SKU: "SKU-1", Name: "Drill", Category: "Tools", Quantity: 40, WarehouseID: w1.ID})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	res, err := client.Transfer(ctx, &pb.TransferRequest{
		ItemId:                 item.ID,
		SourceWarehouseId:      w1.ID,
		DestinationWarehouseId: w2.ID,
		Quantity:               40,
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if res.Mode != "move" || res.Source != nil || res.Destination.WarehouseId != w2.ID {
		t.Errorf("unexpected transfer response %+v", res)
	}

	got, err := client.GetItem(ctx, &pb.GetItemRequest{Id: item.ID})
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.WarehouseName != "W2" || got.Quantity != 40 {
		t.Errorf("unexpected item %+v", got)
	}

	wh, err := client.GetWarehouse(ctx, &pb.GetWarehouseRequest{Id: w2.ID})
	if err != nil {
		t.Fatalf("get warehouse: %v", err)
	}
	if wh.CurrentCapacity != 40 || wh.UtilizationPercentage != 80 {
		t.Errorf("unexpected warehouse %+v", wh)
	}

	list, err := client.ListWarehouses(ctx, &pb.ListWarehousesRequest{Name: "w"})
	if err != nil || len(list.Warehouses) != 2 {
		t.Errorf("expected 2 warehouses, got %+v (%v)", list, err)
	}

	found, err := client.SearchItems(ctx, &pb.SearchItemsRequest{Term: "tools"})
	if err != nil || len(found.Items) != 1 {
		t.Errorf("expected one item, got %+v (%v)", found, err)
	}

	dash, err := client.Dashboard(ctx, &pb.DashboardRequest{Threshold: 50})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.TotalQuantity != 40 || dash.Threshold != 50 || len(dash.NearCapacity) != 1 {
		t.Errorf("unexpected dashboard %+v", dash)
	}
}

func TestGRPC_StatusCodes(t *testing.T) {
	client, ledger := newTestGRPC(t)
	ctx := context.Background()

	w1, _ := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W1", Location: "A", MaxCapacity: 100})
	w2, _ := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W2", Location: "B", MaxCapacity: 5})
	item, _ := ledger.CreateItem(ctx, service.NewItem{SKU: "SKU-1", Name: "Drill", Quantity: 40, WarehouseID: w1.ID})

	tests := []struct {
		name string
		req  *pb.TransferRequest
		want codes.Code
	}{
		{"missing item", &pb.TransferRequest{ItemId: "nope", SourceWarehouseId: w1.ID, DestinationWarehouseId: w2.ID, Quantity: 1}, codes.NotFound},
		{"wrong source", &pb.TransferRequest{ItemId: item.ID, SourceWarehouseId: w2.ID, DestinationWarehouseId: w1.ID, Quantity: 1}, codes.FailedPrecondition},
		{"zero quantity", &pb.TransferRequest{ItemId: item.ID, SourceWarehouseId: w1.ID, DestinationWarehouseId: w2.ID, Quantity: 0}, codes.InvalidArgument},
		{"no room", &pb.TransferRequest{ItemId: item.ID, SourceWarehouseId: w1.ID, DestinationWarehouseId: w2.ID, Quantity: 6}, codes.ResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Transfer(ctx, tt.req)
			if got := status.Code(err); got != tt.want {
				t.Errorf("expected %s, got %s (%v)", tt.want, got, err)
			}
		})
	}

	req := &pb.TransferRequest{ItemId: item.ID, SourceWarehouseId: w1.ID, DestinationWarehouseId: w2.ID, Quantity: 1, IdempotencyKey: "k1"}
	if _, err := client.Transfer(ctx, req); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if _, err := client.Transfer(ctx, req); status.Code(err) != codes.AlreadyExists {
		t.Errorf("expected AlreadyExists on replay, got %v", err)
	}
}

func TestGRPC_LargeQuantitiesRoundTrip(t *testing.T) {
	client, ledger := newTestGRPC(t)
	ctx := context.Background()

	w1, err := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W1", Location: "A", MaxCapacity: math.MaxInt32})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	w2, err := ledger.CreateWarehouse(ctx, service.WarehouseInput{Name: "W2", Location: "B", MaxCapacity: math.MaxInt32})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	item, err := ledger.CreateItem(ctx, service.NewItem{SKU: "SKU-1", Name: "Bolt", Category: "Parts", Quantity: math.MaxInt32 - 1, WarehouseID: w1.ID})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := ledger.CreateItem(ctx, service.NewItem{SKU: "SKU-2", Name: "Nut", Category: "Parts", Quantity: math.MaxInt32, WarehouseID: w2.ID}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	got, err := client.GetItem(ctx, &pb.GetItemRequest{Id: item.ID})
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	want := &pb.Item{
		Id:            item.ID,
		Sku:           "SKU-1",
		Name:          "Bolt",
		Category:      "Parts",
		Quantity:      math.MaxInt32 - 1,
		WarehouseId:   w1.ID,
		WarehouseName: "W1",
	}
	if !proto.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	wh, err := client.GetWarehouse(ctx, &pb.GetWarehouseRequest{Id: w1.ID})
	if err != nil {
		t.Fatalf("get warehouse: %v", err)
	}
	if wh.MaxCapacity != math.MaxInt32 || wh.CurrentCapacity != math.MaxInt32-1 || wh.AvailableCapacity != 1 {
		t.Errorf("unexpected warehouse %v", wh)
	}

	dash, err := client.Dashboard(ctx, &pb.DashboardRequest{Threshold: 50})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	const total = int64(math.MaxInt32)*2 - 1
	if dash.TotalQuantity != total {
		t.Errorf("expected total %d, got %d", total, dash.TotalQuantity)
	}
	if len(dash.QuantityByCategory) != 1 || dash.QuantityByCategory[0].GetQuantity() != total {
		t.Errorf("expected Parts to hold %d, got %v", total, dash.QuantityByCategory)
	}
}
