package domain

import "errors"

var (
	ErrNetworkUnavailable   = errors.New("network unavailable")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrStorageCorrupt       = errors.New("storage corrupt")
	ErrBackendMisconfigured = errors.New("payment provider not configured")
	ErrUnknownAction        = errors.New("unknown cart action")
)
