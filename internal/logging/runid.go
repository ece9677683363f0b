package logging

import "github.com/oklog/ulid/v2"

// GenerateRunID generates a new ULID identifying one CLI invocation. ULIDs
// sort lexicographically by creation time, which keeps per-run log files in
// chronological order when listed by name.
func GenerateRunID() string {
	return ulid.Make().String()
}
