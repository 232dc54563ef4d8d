package api

// HTTPError carries the status and user-facing message a handler wants
// served, plus the underlying error for the server log. Handlers return it;
// MakeHTTPHandleFunc turns it into the response.
type HTTPError struct {
	StatusCode int
	Message    string
	ErrorLog   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the logged cause to errors.Is and errors.As.
func (e *HTTPError) Unwrap() error {
	return e.ErrorLog
}

// ApiError is the JSON error body sent to clients.
type ApiError struct {
	Error string `json:"message"`
}
