// Package logging holds the zap helpers shared by the memo packages.
package logging

import (
	"go.uber.org/zap"
)

// OrNop returns logger, or a no-op logger when logger is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
