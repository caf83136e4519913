// Package network walks a desert map of left/right forks.
//
// A map is an instruction line followed by a node table:
//
//	LLR
//
//	AAA = (BBB, BBB)
//	BBB = (AAA, ZZZ)
//	ZZZ = (ZZZ, ZZZ)
//
// Walks apply the instructions cyclically. Because the graph is finite and
// every node has exactly two successors, a walk is eventually periodic: as
// soon as a node repeats while the instruction pointer is back at zero, the
// walk will replay the same steps forever.
//
// What:
//
//   - Steps: length of a single walk to a target (ErrInfiniteLoop if none).
//   - FindCycle: phase, length and accepting steps of a walk's period.
//   - Combine: smallest common accepting step of two periodic walks.
//   - LcmSteps: simultaneous arrival of many walks via Combine.
//   - CycleLcm: least common multiple of the raw period lengths.
//   - GhostWalk: simultaneous arrival by stepping every walk in lock step.
//
// Complexity:
//
//   - Steps, FindCycle: O(N·I) steps, Memory: O(N)   (N nodes, I instructions).
//   - Combine:          O(min(L₁, L₂)) iterations.
//   - GhostWalk:        O(answer · walkers).
//
// Options:
//
//   - WithContext: cancellation, checked every few thousand steps.
//   - WithMaxSteps: hard bound on steps per walk (ErrStepLimit).
package network
