// Package fixtures builds deterministic *core.Graph scenarios for the
// concrete cases spec.md §8 names: a dog-leg junction pair, a
// dual-carriageway pair with a crossing side street, a degenerate
// intersection, and a sidepath/connector pair running alongside a
// road. Each scenario is a Constructor-shaped closure that appends to
// a shared Builder, so several scenarios can be composed into one
// graph with non-colliding ids, or used standalone via Build.
package fixtures
