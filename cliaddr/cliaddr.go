// Package cliaddr validates the server/client address argument shared by
// both CLI entry points, grounded on the original assignment's cli
// module (a single compiled regex, one error for a malformed target).
package cliaddr

import (
	"fmt"
	"regexp"
)

// DefaultAddress is used by both entry points when no address argument is
// given.
const DefaultAddress = "127.0.0.1:9898"

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9.\-]+:\d{1,5}$`)

// Validate reports an error if addr is not of the form <host>:<port>.
func Validate(addr string) error {
	if !addressPattern.MatchString(addr) {
		return fmt.Errorf("cliaddr: invalid address %q, expected <host>:<port>", addr)
	}
	return nil
}
