package http

import "errors"

// ErrMissingAuthToken is returned by the auth middleware when the incoming
// request does not carry an x-auth-token header at all.
var ErrMissingAuthToken = errors.New("missing auth token")
