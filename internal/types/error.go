package types

import "errors"

// Rejection kinds
const (
	KindAccessDenied = "access_denied"
	KindNotFound     = "not_found"
	KindTooFar       = "too_far"
	KindUnavailable  = "unavailable"
	KindInvalidInput = "invalid_input"
)

// Rejection is a refusal the user should read, not an infrastructure failure.
// Handlers print the message and return to the menu.
type Rejection struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *Rejection) Error() string {
	return e.Message
}

// Reject builds a Rejection
func Reject(kind, message string) *Rejection {
	return &Rejection{Kind: kind, Message: message}
}

// AsRejection unwraps err to a Rejection if it is one
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsKind reports whether err is a Rejection of the given kind
func IsKind(err error, kind string) bool {
	r, ok := AsRejection(err)
	return ok && r.Kind == kind
}
