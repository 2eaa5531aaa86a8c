// Package pb holds the protobuf messages and gRPC bindings generated from
// api/ledger/v1/ledger.proto.
package pb

//go:generate protoc --proto_path=../../../.. --go_out=../../../.. --go_opt=module=github.com/rl1809/warehouse-ledger --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/rl1809/warehouse-ledger api/ledger/v1/ledger.proto
