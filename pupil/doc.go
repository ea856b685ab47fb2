// Package pupil models wavefronts across a circular entrance pupil.
//
// A Pupil carries the optical path difference (OPD) sampled on a square
// grid; points outside the clear aperture are NaN so statistics and plots
// skip them naturally. Seidel builds pupils from classical third-order
// aberration terms W_klm (field^k * rho^l * cos^m(phi)).
package pupil
