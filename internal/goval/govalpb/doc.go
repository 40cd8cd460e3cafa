// Package govalpb holds the generated protobuf bindings for the goval wire
// protocol. Use package goval instead of importing this one directly.
package govalpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative goval.proto
