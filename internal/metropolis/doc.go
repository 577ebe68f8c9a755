// Package metropolis implements the single-spin-flip Metropolis update for
// the ferromagnetic Ising model without external field.
//
// For a site with spin σ and neighbour sum S the kernel evaluates the local
// quantity h = -J·σ·S, which equals -ΔE/2 for the candidate flip:
//
//   - h >= 0 (ΔE <= 0): the spin is flipped and no random draw is used.
//   - h < 0  (ΔE > 0):  one uniform p in [0, 1) is drawn and the spin is
//     flipped iff p < exp(2·β·h).
//
// [Kernel.Step] selects the site with two uniform integer draws, row first,
// then column. Together with the conditional float draw this fixes the order
// in which a seeded source is consumed.
package metropolis
