// Package hcl provides the HCL implementation of the config.Loader
// interface. It reads grid declarations from native HCL files (.hcl) and
// from HCL's JSON syntax (.json), evaluates their expressions and converts
// the results into the format-agnostic config.Model.
//
// A grid is declared as:
//
//	grid "staged" {
//	  description    = "8x9 staged opponent avoidance grid"
//	  rows           = ["......X.X", "X........"]
//	  expected_paths = 102
//	}
//
// Expressions may reference the variables `passable` (".") and `blocked`
// ("X") and call concat, join, format and upper.
package hcl
