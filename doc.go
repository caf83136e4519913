// Package aoc collects Advent of Code 2023 solutions, one package per
// puzzle, plus the command that runs them.
//
// 🚀 What is aoc?
//
//	A set of small, tested puzzle libraries:
//		• trebuchet: day 1, calibration digits (plain and spelled out)
//		• cubes: day 2, cube game records
//		• schematic: day 3, engine part numbers and gear ratios
//		• scratchcards: day 4, card points and cascading copies
//		• almanac: day 5, seed to location maps (brute force and intervals)
//		• boatrace: day 6, winning hold times
//		• camelcards: day 7, hand ranking with optional jokers
//		• network: day 8, left/right walks, cycle detection, offset combination
//		• oasis: day 9, difference extrapolation
//		• pipes: day 10, loop tracing and enclosed tiles
//		• cosmos: day 11, galaxy distances in expanding space
//		• gridgraph: shared 2-D grid with flood fill and components
//
// Every puzzle part is a subcommand of cmd/aoc:
//
//	aoc day10b --input day10.txt
//	Day10b: 4
//
// Libraries never print or log; they return answers and sentinel errors
// that callers match with errors.Is.
//
//	go install github.com/katalvlaran/aoc/cmd/aoc@latest
package aoc
