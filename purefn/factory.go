package purefn

import (
	"github.com/on-the-ground/memo_ive_go/fingerprint"
)

// Factory produces a Decorator for one table configuration.
type Factory func(opts ...Option) Decorator

// Decorator pairs a fingerprint function with a table configuration.
// Pass it to DecorateI1..DecorateI4 or DecorateArgs; every decorated
// function gets a table of its own.
type Decorator struct {
	fingerprint fingerprint.Func
	cfg         config
}

// NewFactory returns a Factory whose decorators fingerprint every argument
// with fp. A nil fp uses the arguments themselves.
func NewFactory(fp fingerprint.Func) Factory {
	if fp == nil {
		fp = fingerprint.Identity
	}
	return func(opts ...Option) Decorator {
		return Decorator{
			fingerprint: fp,
			cfg:         newConfig(opts),
		}
	}
}

// Identity is the factory for arguments that are already comparable.
var Identity = NewFactory(fingerprint.Identity)
