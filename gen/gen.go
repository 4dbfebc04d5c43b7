// Package gen anchors protobuf code generation. Generated Go lives under
// gen/go and is not committed; regenerate after editing the proto.
package gen

//go:generate protoc --proto_path=../proto --go_out=go --go_opt=paths=source_relative --go-grpc_out=go --go-grpc_opt=paths=source_relative sovereignty/v1/registry.proto
