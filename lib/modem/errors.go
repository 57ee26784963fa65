package modem

import "errors"

var (
	// ErrUnknownModel is returned by New when no implementation exists for
	// the requested model string.
	ErrUnknownModel = errors.New("unknown modem model")

	// ErrInvalidCredentials is returned when the modem rejects the login
	// handshake. Transport failures are wrapped and passed through instead.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
