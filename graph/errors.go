package graph

import "log"

const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeForbidden       = "FORBIDDEN"
	codeNotFound        = "NOT_FOUND"
	codeBadUserInput    = "BAD_USER_INPUT"
	codeConflict        = "CONFLICT"
	codeInternal        = "INTERNAL_SERVER_ERROR"
)

// requestError terminates a single operation with a structured error. The
// code travels to clients under extensions.code.
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

func (e *requestError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func errUnauthenticated() error {
	return &requestError{code: codeUnauthenticated, message: "not authorized"}
}

func errForbidden() error {
	return &requestError{code: codeForbidden, message: "you are not the creator of this movie"}
}

func errNotFound(message string) error {
	return &requestError{code: codeNotFound, message: message}
}

func errValidation(message string) error {
	return &requestError{code: codeBadUserInput, message: message}
}

func errConflict(message string) error {
	return &requestError{code: codeConflict, message: message}
}

// errInternal logs the cause server-side and hands the client an opaque
// message; collaborator failures are never exposed.
func errInternal(op string, err error) error {
	log.Printf("Unexpected error in %s: %v", op, err)
	return &requestError{code: codeInternal, message: "internal server error"}
}
