package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/docstore"
)

type HTTPError = api.HTTPError

type ApiMessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	return api.WriteJSON(w, status, v)
}

func MethodHandler(
	w http.ResponseWriter,
	r *http.Request,
	allowed map[string]func(http.ResponseWriter, *http.Request) error,
) error {
	if handler, ok := allowed[r.Method]; ok {
		return handler(w, r)
	}
	return &HTTPError{
		StatusCode: http.StatusMethodNotAllowed,
		Message:    "Method not allowed.",
		ErrorLog:   fmt.Errorf("method not allowed"),
	}
}

func badRequest(message string, err error) error {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		ErrorLog:   err,
	}
}

func notFound(message string, err error) error {
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Message:    message,
		ErrorLog:   err,
	}
}

// storeError maps a missing document onto 404 and everything else onto 500.
func storeError(notFoundMessage string, err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return notFound(notFoundMessage, err)
	}
	return internalError(err)
}

func internalError(err error) error {
	return &HTTPError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
		ErrorLog:   err,
	}
}
