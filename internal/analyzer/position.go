package analyzer

import "github.com/uguisu-dev/uguisu/internal/diagnostics"

// resolvePos is a thin wrapper so call sites in this package read
// naturally; the actual conversion is shared with the parser via
// diagnostics.ResolvePosition.
func resolvePos(src string, offset int) diagnostics.Position {
	return diagnostics.ResolvePosition(src, offset)
}
