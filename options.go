package outliner

import (
	"github.com/tsawler/outliner/structure"
)

// extractOptions holds configuration for outline extraction.
type extractOptions struct {
	// Page cap (0 means the engine default)
	maxPages int

	// Named heuristic profile
	profile structure.Profile

	// Full explicit config; when set it wins over profile and maxPages
	config *structure.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		maxPages: 0,
		profile:  structure.ProfileGeneric,
		config:   nil,
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := extractOptions{
		maxPages: o.maxPages,
		profile:  o.profile,
	}

	if o.config != nil {
		cfg := *o.config
		newOpts.config = &cfg
	}

	return newOpts
}

// engineConfig resolves the options into the structure.Config the engine
// will run with.
func (o extractOptions) engineConfig() structure.Config {
	var cfg structure.Config
	if o.config != nil {
		cfg = *o.config
	} else {
		cfg = structure.ConfigForProfile(o.profile)
	}
	if o.maxPages > 0 {
		cfg.MaxPages = o.maxPages
	}
	return cfg
}
