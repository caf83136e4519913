// Package schematic reads engine schematics: grids of digits, dots and symbols.
//
// A part number is a horizontal run of digits touching a symbol in any of the
// 8 directions. A gear is a '*' touching exactly two part numbers; its ratio
// is their product. The grid itself is a gridgraph.Grid with Conn8.
package schematic
