// Package purity measures the spectral purity of a rendered cosine tone.
//
// An approximation error that depends on the phase shows up as harmonics and
// spurs in the spectrum of a tone rendered with the approximation. [Render]
// samples a whole number of periods so the tone falls exactly on one FFT bin,
// and [Analyze] reports the distortion (THD) and the spurious-free dynamic
// range (SFDR) relative to that bin.
package purity
