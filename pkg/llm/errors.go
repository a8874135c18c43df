package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind categorizes LLM failures. The engine's recovery policy keys off it:
// advisory calls swallow everything, load-bearing calls surface the kind to
// the client.
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindRateLimit      Kind = "rate_limit"
	KindInvalidRequest Kind = "invalid_request"
	KindServerError    Kind = "server_error"
	KindNetwork        Kind = "network"
	KindTimeout        Kind = "timeout"
	KindParse          Kind = "parse"
	KindUnknown        Kind = "unknown"
)

// Error is a categorized LLM failure.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Retryable reports whether a single retry with backoff is worthwhile.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimit, KindServerError, KindNetwork, KindTimeout:
		return true
	default:
		return false
	}
}

// NewError builds a categorized error with an optional cause.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Categorize maps an arbitrary error from the gRPC layer into the taxonomy.
// Already-categorized errors pass through unchanged.
func Categorize(err error) *Error {
	if err == nil {
		return nil
	}
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(KindTimeout, "deadline exceeded", err)
	}
	if errors.Is(err, context.Canceled) {
		return NewError(KindNetwork, "call cancelled", err)
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return NewError(KindAuthentication, st.Message(), err)
		case codes.ResourceExhausted:
			return NewError(KindRateLimit, st.Message(), err)
		case codes.InvalidArgument, codes.FailedPrecondition:
			return NewError(KindInvalidRequest, st.Message(), err)
		case codes.Internal, codes.Unknown:
			return NewError(KindServerError, st.Message(), err)
		case codes.Unavailable:
			return NewError(KindNetwork, st.Message(), err)
		case codes.DeadlineExceeded:
			return NewError(KindTimeout, st.Message(), err)
		}
	}
	return NewError(KindUnknown, err.Error(), err)
}

// CategorizeCode maps a provider error code string (from a StreamError chunk)
// to a Kind.
func CategorizeCode(code string) Kind {
	switch code {
	case "authentication":
		return KindAuthentication
	case "rate_limit":
		return KindRateLimit
	case "invalid_request":
		return KindInvalidRequest
	case "server_error":
		return KindServerError
	case "network":
		return KindNetwork
	case "timeout":
		return KindTimeout
	default:
		return KindUnknown
	}
}
