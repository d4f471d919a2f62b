package config

import "github.com/pkg/errors"

var (
	ErrEmptyProfile     = errors.New("profile has neither host/port nor provider")
	ErrAmbiguousProfile = errors.New("profile has both host/port and provider")
	ErrInvalidRuns      = errors.New("optimizer runs must be positive")
	ErrInvalidVersion   = errors.New("invalid compiler version")
	ErrInvalidNetworkID = errors.New("invalid network_id")
	ErrInvalidEndpoint  = errors.New("invalid provider endpoint")
	ErrInvalidHost      = errors.New("invalid host or port")
	ErrInvalidGas       = errors.New("gas and gasPrice must be positive")
	ErrPlaintextKey     = errors.New("private key material must not be stored in the descriptor")
	ErrMissingKey       = errors.New("no key material supplied for provider")
	ErrInvalidKey       = errors.New("invalid private key material")
	ErrUnknownProfile   = errors.New("unknown network profile")
)
