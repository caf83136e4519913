// Package almanac follows seeds through a chain of category maps down to a
// location number.
//
// An almanac lists seeds, then one block per map:
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each "dest src len" line moves [src, src+len) onto [dest, dest+len);
// numbers outside every line map to themselves.
//
// Three strategies answer "lowest location":
//
//   - LowestLocation: each seed is a single number.
//   - LowestRangeLocationBrute: seeds are (start, length) pairs, every seed
//     is walked through the chain, spread across worker goroutines.
//   - LowestRangeLocation: the same pairs, remapped as whole intervals.
//
// Complexity:
//
//   - Brute force: O(S·M·log k) for S seeds, M maps, k lines per map.
//   - Interval remapping: O(M·R·k) for R live intervals.
package almanac
