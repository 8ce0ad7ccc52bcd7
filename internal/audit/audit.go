// Package audit implements the process-wide audit-enabled switch
// (spec.md §5, §9 "Audit mode"): when enabled, every deserialized
// command is re-serialized and compared against the original buffer,
// with compressed sub-regions compared after decompression.
package audit

import (
	"bytes"

	"go.uber.org/atomic"

	"github.com/kawogi/luanti-go-proto/internal/log"
)

// enabled is the "process-wide audit-enabled flag, which is a relaxed
// atomic boolean" spec.md §5 calls out as the only cross-peer shared
// mutable state in the whole design.
var enabled = atomic.NewBool(false)

// Enable turns audit mode on process-wide.
func Enable() { enabled.Store(true) }

// Disable turns audit mode off process-wide.
func Disable() { enabled.Store(false) }

// Enabled reports whether audit mode is currently on.
func Enabled() bool { return enabled.Load() }

// Check re-serializes a decoded command (via reserialize) and compares
// the result against the original wire bytes, logging a mismatch. It
// is a no-op unless audit mode is enabled, and is never on the fast
// path of normal decode (spec.md: "Intended for development; not in
// the fast path.").
func Check(commandName string, original []byte, reserialize func() ([]byte, error)) {
	if !enabled.Load() {
		return
	}
	got, err := reserialize()
	if err != nil {
		log.Warn("audit: failed to re-serialize %s: %v", commandName, err)
		return
	}
	if !bytes.Equal(got, original) {
		log.Warn("audit: round-trip mismatch for %s (got %d bytes, want %d bytes)", commandName, len(got), len(original))
	}
}

// CheckDecompressed is Check's variant for compressed sub-regions: the
// comparison is against the decompressed inner bytes, not the
// compressed wire bytes, matching spec.md's explicit blockdata/
// compressed-payload special case.
func CheckDecompressed(commandName string, originalDecompressed []byte, reserialize func() ([]byte, error)) {
	Check(commandName, originalDecompressed, reserialize)
}
