package hostaddr

import (
	"errors"
	"fmt"
)

// ErrNoIPv4 is reported when a lookup succeeds but yields no IPv4 address.
var ErrNoIPv4 = errors.New("no IPv4 address found")

// ResolveError reports a host that could not be resolved to an address.
type ResolveError struct {
	Host string
	Err  error
}

func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("cannot resolve IP address of (%v) from DNS", e.Host)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
