// Package mps reads the classical fixed/free-format MPS sections NAME,
// OBJSENSE (optional), ROWS, COLUMNS (with INTORG/INTEND markers), RHS,
// and BOUNDS (UP, LO, BV, LI, UI, FX, FR, MI, PL) into a *model.Store.
// RANGES and SOS sections are rejected with ErrUnsupportedSection.
//
// Parse is the package's only external-collaborator surface (spec.md
// §6): it owns no knowledge of search, preprocessing, or scoring.
package mps
