// Package accuracy measures how closely a scalar approximation tracks a
// reference function.
//
// [Sweep] evaluates both functions over a seeded uniform sample or an even
// grid of a closed interval and reports absolute error statistics. [Points]
// checks individual inputs such as the [Landmarks] or very large arguments,
// while [Evenness] and [Periodicity] check the symmetry properties a cosine
// approximation has to preserve.
package accuracy
