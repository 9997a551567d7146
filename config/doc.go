// Package config collects the numeric tolerances spec.md §9 calls
// "explicit, design choices, not accidents" into one struct with
// documented defaults, loadable from an optional YAML/env layer via
// viper. Nothing here is session state — it's static parameterization
// of constants. The commands, geometry and readout packages copy them
// into package-level variables (overwritten by their ApplyTolerances
// functions); face decomposition reads Default directly.
package config
