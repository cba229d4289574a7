package core

// EmptyParams is passed to the typed client helpers when a request carries
// no parameters.
var EmptyParams = struct{}{}

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that exponential backoff will be used for retryable errors.
	// Transient 5xx responses and transport failures are retried until the
	// configured maximum elapsed time; 4xx responses are never retried.
	Backoff
)
