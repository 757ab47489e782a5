package errors

// Code classifies an error for the action protocol and its callers.
type Code string

// Error codes. The protocol maps these onto its response taxonomy:
// resolution failures are NOT_FOUND, policy rejections are
// FAILED_PRECONDITION / PERMISSION_DENIED / RESOURCE_EXHAUSTED,
// transient operational failures are UNAVAILABLE, and corrupt payloads
// are INVALID_ARGUMENT or DATA_LOSS.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Expected reports whether the code represents expected control flow
// (policy rejections and missing records) rather than a fault. Expected
// errors are surfaced to players and not logged as errors.
func (c Code) Expected() bool {
	switch c {
	case CodeNotFound, CodePermissionDenied, CodeResourceExhausted, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
