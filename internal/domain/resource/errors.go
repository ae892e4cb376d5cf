package resource

import "errors"

var (
	ErrNotFound    = errors.New("resource not found")
	ErrUnknownKind = errors.New("unknown resource type")
)
