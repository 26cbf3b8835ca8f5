package models

// ValidationResponse is the payload returned for a rejected submission.
// Clients render Message as a summary banner and attach each entry of
// Errors inline next to the offending field.
type ValidationResponse struct {
	// Message is the human-readable summary of the failure.
	Message string `json:"message"`

	// Errors maps a field name to the message describing why the
	// submitted value was rejected.
	Errors map[string]string `json:"errors"`
}
