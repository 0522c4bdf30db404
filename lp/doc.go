// Package lp reads the CPLEX-style LP format: an objective preceded by
// minimize/maximize, a "subject to"/"st" constraint block, and optional
// bounds/general/binary sections terminated by "end". RANGES-equivalent
// constructs (chained bounds, named or auto-named rows) are supported;
// SOS and indicator constraints are not part of this grammar and are
// simply never recognised as section keywords.
//
// Parse is the package's only external-collaborator surface, mirroring
// the mps package's shape so the two readers are interchangeable from a
// caller's point of view.
package lp
