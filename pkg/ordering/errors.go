package ordering

import "errors"

// Common errors for ordering operations
var (
	ErrUnsupportedEntity = errors.New("unsupported entity")
	ErrRecordNotFound    = errors.New("record not found in scope")
	ErrUnknownScopeKey   = errors.New("unknown scope key")
	ErrBadDirection      = errors.New("bad direction")
	ErrBadOrderField     = errors.New("bad order field")
)
