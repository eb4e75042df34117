package client

import (
	"errors"
	"syscall"
)

// isTransient reports whether a send failure is the stale-pooled-connection
// condition worth exactly one resend: the peer closed or reset the
// connection between reuse attempts. Classification walks the error chain
// for specific I/O conditions and never inspects error text. Refused
// connections, DNS failures, timeouts, canceled contexts and mid-response
// EOF all count as genuine failures; retrying those could mask an outage or
// double-send a request that already executed.
func isTransient(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED)
}
