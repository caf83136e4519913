package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGame parses a single "Game N: ..." record.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrSyntax, line)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing 'Game' in %q", ErrSyntax, line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game id %q", ErrSyntax, idText)
	}

	g := Game{ID: id}
	for _, part := range strings.Split(body, ";") {
		d, err := parseDraw(part)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// Parse parses one record per non-empty line.
func Parse(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		g, err := ParseGame(l)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// parseDraw reads "3 blue, 4 red".
func parseDraw(s string) (Draw, error) {
	var d Draw
	for _, item := range strings.Split(s, ",") {
		fields := strings.Fields(item)
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("%w: cube count %q", ErrSyntax, item)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Draw{}, fmt.Errorf("%w: cube count %q", ErrSyntax, item)
		}
		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("%w: %q", ErrColour, fields[1])
		}
	}
	return d, nil
}

// Within reports whether d fits inside bag.
func (d Draw) Within(bag Draw) bool {
	return d.Red <= bag.Red && d.Green <= bag.Green && d.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (d Draw) Power() int {
	return d.Red * d.Green * d.Blue
}

// MinimalBag returns the smallest bag that makes every draw possible.
func (g Game) MinimalBag() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Possible reports whether every draw of g fits inside bag.
func (g Game) Possible(bag Draw) bool {
	return g.MinimalBag().Within(bag)
}

// SumPossible adds up the ids of games possible with bag.
func SumPossible(games []Game, bag Draw) int {
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

// SumPower adds up the power of every game's minimal bag.
func SumPower(games []Game) int {
	sum := 0
	for _, g := range games {
		sum += g.MinimalBag().Power()
	}
	return sum
}
