package errx

import "net/http"

// WrapSchema marks a structured model response that failed validation.
// These are fatal for the current request and propagate to the caller.
func WrapSchema(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(err, http.StatusUnprocessableEntity, SchemaErrorMessage)
}
