package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GradingFailureKind is the closed set of reasons a grading call can fail.
// The orchestrator only ever looks at this value, never at provider payloads.
type GradingFailureKind int

const (
	FailureUnknown GradingFailureKind = iota
	FailureTransient
	FailureQuotaExhausted
)

func (k GradingFailureKind) String() string {
	switch k {
	case FailureQuotaExhausted:
		return "quota_exhausted"
	case FailureTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// GradingError carries the classified failure of a grading call.
type GradingError struct {
	Kind       GradingFailureKind
	StatusCode int    // provider HTTP status, 0 when no response was received
	ErrorType  string // provider error type or code, if any
	Err        error
}

func (e *GradingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grading failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("grading failed (%s)", e.Kind)
}

func (e *GradingError) Unwrap() error {
	return e.Err
}

// quotaErrorTypes are provider error types/codes that mean the account has run
// out of credit, as opposed to a short-lived rate limit.
var quotaErrorTypes = map[string]bool{
	"exceeded_current_quota_error": true, // Moonshot / Kimi
	"insufficient_quota":           true, // OpenAI
}

// ClassifyGradingError maps any error returned by a GradingClient onto a
// GradingFailureKind.
func ClassifyGradingError(err error) GradingFailureKind {
	if err == nil {
		return FailureUnknown
	}
	var gErr *GradingError
	if errors.As(err, &gErr) {
		return gErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureTransient
	}
	return classifyGeminiError(err)
}

// classifyHTTPStatus handles non-2xx responses from a chat-completion endpoint.
func classifyHTTPStatus(statusCode int, errorType, errorCode string) GradingFailureKind {
	if statusCode == http.StatusTooManyRequests &&
		(quotaErrorTypes[strings.ToLower(errorType)] || quotaErrorTypes[strings.ToLower(errorCode)]) {
		return FailureQuotaExhausted
	}
	switch {
	case statusCode == http.StatusTooManyRequests,
		statusCode == http.StatusRequestTimeout,
		statusCode >= 500:
		return FailureTransient
	default:
		return FailureUnknown
	}
}

// exhaustedReasons are Google error reasons that mean the project cannot make
// further calls until billing or a daily allowance is restored. Keys are
// lower-cased; ErrorInfo uses UPPER_SNAKE and legacy error items use camelCase.
var exhaustedReasons = map[string]bool{
	"billing_disabled":   true,
	"billingnotenabled":  true,
	"dailylimitexceeded": true,
}

// classifyGeminiError inspects errors surfaced by the Gemini SDK, which come
// back either as gRPC statuses or as googleapi REST errors. Only structured
// details decide quota exhaustion; Gemini words per-minute throttles and
// billing failures the same way.
func classifyGeminiError(err error) GradingFailureKind {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErrorExhausted(apiErr):
			return FailureQuotaExhausted
		case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= 500:
			return FailureTransient
		default:
			return FailureUnknown
		}
	}
	if st, ok := status.FromError(err); ok {
		if statusExhausted(st) {
			return FailureQuotaExhausted
		}
		switch st.Code() {
		case codes.ResourceExhausted, codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.Internal:
			return FailureTransient
		}
	}
	return FailureUnknown
}

func statusExhausted(st *status.Status) bool {
	for _, d := range st.Details() {
		switch detail := d.(type) {
		case *errdetails.ErrorInfo:
			if exhaustedReasons[strings.ToLower(detail.GetReason())] {
				return true
			}
		case *errdetails.QuotaFailure:
			for _, v := range detail.GetViolations() {
				if isDailyQuota(v.GetQuotaId()) {
					return true
				}
			}
		}
	}
	return false
}

// apiErrorExhausted reads the REST form of the same details, which the client
// library leaves as decoded JSON maps.
func apiErrorExhausted(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		if exhaustedReasons[strings.ToLower(item.Reason)] {
			return true
		}
	}
	for _, d := range apiErr.Details {
		detail, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if reason, _ := detail["reason"].(string); exhaustedReasons[strings.ToLower(reason)] {
			return true
		}
		violations, _ := detail["violations"].([]any)
		for _, v := range violations {
			violation, _ := v.(map[string]any)
			if id, _ := violation["quotaId"].(string); isDailyQuota(id) {
				return true
			}
		}
	}
	return false
}

// isDailyQuota matches quota IDs such as
// "GenerateRequestsPerDayPerProjectPerModel-FreeTier".
func isDailyQuota(quotaID string) bool {
	return strings.Contains(strings.ToLower(quotaID), "perday")
}
