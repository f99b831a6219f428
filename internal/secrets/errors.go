package secrets

import "errors"

// ErrNotConfigured means none of the secret sources carried a value.
var ErrNotConfigured = errors.New("not configured")
