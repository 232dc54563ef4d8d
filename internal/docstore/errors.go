package docstore

import "errors"

var (
	ErrNotFound         = errors.New("docstore: not found")
	ErrPermissionDenied = errors.New("docstore: permission denied")
)
