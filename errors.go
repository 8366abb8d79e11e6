package seckit

import "errors"

var (
	// ErrKitNotReady is an exported constant or variable used by the seckit facade.
	ErrKitNotReady = errors.New("kit not ready")
	// ErrEntropyUnavailable is an exported constant or variable used by the seckit facade.
	ErrEntropyUnavailable = errors.New("secure entropy source unavailable")
	// ErrSignerNotConfigured is an exported constant or variable used by the seckit facade.
	ErrSignerNotConfigured = errors.New("signer not configured")
)
