package identity

import "errors"

// ErrInvalidToken covers every credential the verifier will not accept:
// malformed, expired, revoked, or unknown to the identity service.
var ErrInvalidToken = errors.New("identity: invalid token")
