package travel

// Validation reason codes
const (
	CodeMissingField       = "MISSING_FIELD"
	CodeTooFewFlights      = "TOO_FEW_FLIGHTS"
	CodeDuplicateFlight    = "DUPLICATE_FLIGHT"
	CodeUnknownFlight      = "UNKNOWN_FLIGHT"
	CodeRouteDiscontinuity = "ROUTE_DISCONTINUITY"
	CodeNonChronological   = "NON_CHRONOLOGICAL"
	CodeShortConnection    = "SHORT_CONNECTION"
)

// ValidationError reports malformed or semantically invalid input. It is the
// only error this package produces itself; collaborator errors pass through
// unchanged.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
