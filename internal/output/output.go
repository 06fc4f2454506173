// Package output decides where the report lands on disk.
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Extension is the only document format the builder produces.
const Extension = ".pdf"

// Millisecond precision keeps names distinct even when runs start within
// the same second.
const timestampLayout = "20060102T150405.000"

// clock is a package-level time source so tests can freeze time via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the package clock.
func Now() time.Time {
	return clock.Now()
}

// Resolve returns the effective output path plus a notice for the user
// when the requested path had to be adjusted. An empty path derives a
// timestamped filename unique to the run.
func Resolve(path string) (resolved, notice string) {
	if path == "" {
		return fmt.Sprintf("route_map_%s%s", clock.Now().Format(timestampLayout), Extension), ""
	}
	if ext := filepath.Ext(path); ext != Extension {
		resolved = strings.TrimSuffix(path, ext) + Extension
		return resolved, fmt.Sprintf("output must be a %s file, writing %s instead of %s", Extension, resolved, path)
	}
	return path, ""
}
