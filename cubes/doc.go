// Package cubes parses cube game records and answers bag-content questions.
//
// A record looks like
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green
//
// Each ';'-separated draw reveals some red, green and blue cubes.
// A game is possible for a bag when no draw exceeds the bag's counts;
// the power of a game is the product of the smallest possible bag.
package cubes
