// Package numeric provides the array utilities shared by the optics and
// colorimetry packages: parity and power-of-two predicates, RMS and
// peak-to-valley statistics, empirical CDFs, window smoothing, gamma
// correction, array folding, and paired-array sorting.
//
// Two-dimensional data is carried by the row-major Grid type. Degenerate
// floating-point inputs follow IEEE-754 semantics: divisions by zero yield
// NaN or Inf and flow through, while structural contract violations (length
// mismatches, unknown options, non-numeric input) return explicit errors.
package numeric
