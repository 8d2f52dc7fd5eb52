package types

import "github.com/sablelang/sable/internal/ir"

// Rewrite records one substitution performed by the optimizer: every use of
// Old was replaced by New and Old's defining instruction removed.
type Rewrite struct {
	Rule     string
	Function string
	Block    string
	Old      ir.ValueID
	New      ir.ValueID
}

// ConfigRule holds the per-rule settings read from the configuration file.
type ConfigRule struct {
	Off bool `yaml:"off"`
}
