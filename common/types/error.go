package types

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The container error taxonomy. Every error returned by a container wraps exactly one of these,
// so callers can test with errors.Is or, across an RPC boundary, with status.Code.
var (
	// ErrAllocation indicates that storage for a buffer, node, or bucket array could not be obtained.
	// A container that returns ErrAllocation is left exactly as it was before the call.
	ErrAllocation = status.Error(codes.ResourceExhausted, "storage could not be obtained")

	// ErrIndexOutOfRange indicates an index outside [0, length) or [0, length], as applicable.
	ErrIndexOutOfRange = status.Error(codes.OutOfRange, "index out of range")

	// ErrEmpty indicates that the operation requires at least one element.
	ErrEmpty = status.Error(codes.FailedPrecondition, "container is empty")

	ErrNotFound     = status.Error(codes.NotFound, "target not found")
	ErrDuplicateKey = status.Error(codes.AlreadyExists, "key already present")
)
