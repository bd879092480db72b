// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "availability:"

// RoleAdmin is the only privileged role.
const RoleAdmin = "admin"

// StoreTimeout bounds every single store round-trip.
const StoreTimeout = 5 * time.Second

// DateLayout is the canonical appointment date format.
const DateLayout = "2006-01-02"

// Context keys set by middleware.
const (
	ContextPrincipalKey = "principal"
	ContextRequestIDKey = "requestID"
	ContextLoggerKey    = "logger"
)
