package identity

import "errors"

var (
	ErrUnauthenticated = errors.New("identity: token is not valid")
	ErrUnknownRole     = errors.New("identity: unknown role")
)
