// Package trebuchet recovers calibration values from lines of amended text.
//
// A calibration value is formed from the first and the last digit that
// appear on a line: "a1b2c3" yields 13, "treb7uchet" yields 77.
// With WithSpelledDigits the words "zero" through "nine" count as digits
// too, and they may overlap: "eightwothree" yields 83.
//
// Complexity: O(L·k) per line, where k is the number of spelled words.
package trebuchet
