package solutions

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc/almanac"
	"github.com/katalvlaran/aoc/boatrace"
	"github.com/katalvlaran/aoc/camelcards"
	"github.com/katalvlaran/aoc/cosmos"
	"github.com/katalvlaran/aoc/cubes"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/network"
	"github.com/katalvlaran/aoc/oasis"
	"github.com/katalvlaran/aoc/pipes"
	"github.com/katalvlaran/aoc/schematic"
	"github.com/katalvlaran/aoc/scratchcards"
	"github.com/katalvlaran/aoc/trebuchet"
)

func init() {
	// Day 1.
	register(Solution{Name: "day1a", Day: 1, Title: "Trebuchet?!", Summary: "sum of first and last digit per line", Solve: day1(false)})
	register(Solution{Name: "day1b", Day: 1, Title: "Trebuchet?!", Summary: "the same with spelled-out digits", Solve: day1(true)})

	// Day 2.
	register(Solution{Name: "day2a", Day: 2, Title: "Cube Conundrum", Summary: "sum of ids of possible games", Solve: day2a})
	register(Solution{Name: "day2b", Day: 2, Title: "Cube Conundrum", Summary: "sum of minimal bag powers", Solve: day2b})

	// Day 3.
	register(Solution{Name: "day3a", Day: 3, Title: "Gear Ratios", Summary: "sum of part numbers", Solve: day3a})
	register(Solution{Name: "day3b", Day: 3, Title: "Gear Ratios", Summary: "sum of gear ratios", Solve: day3b})

	// Day 4.
	register(Solution{Name: "day4a", Day: 4, Title: "Scratchcards", Summary: "total card points", Solve: day4a})
	register(Solution{Name: "day4b", Day: 4, Title: "Scratchcards", Summary: "total cards after copying", Solve: day4b})

	// Day 5.
	register(Solution{Name: "day5a", Day: 5, Title: "If You Give A Seed A Fertilizer", Summary: "lowest location of single seeds", Solve: day5a})
	register(Solution{Name: "day5b", Day: 5, Title: "If You Give A Seed A Fertilizer", Summary: "lowest location of seed ranges, brute force", Solve: day5b})
	register(Solution{Name: "day5b2", Day: 5, Title: "If You Give A Seed A Fertilizer", Summary: "lowest location of seed ranges, interval remapping", Solve: day5b2})

	// Day 6.
	register(Solution{Name: "day6a", Day: 6, Title: "Wait For It", Summary: "product of winning hold times", Solve: day6a})
	register(Solution{Name: "day6b", Day: 6, Title: "Wait For It", Summary: "winning hold times of the joined race", Solve: day6b})

	// Day 7.
	register(Solution{Name: "day7a", Day: 7, Title: "Camel Cards", Summary: "total winnings", Solve: day7(false)})
	register(Solution{Name: "day7b", Day: 7, Title: "Camel Cards", Summary: "total winnings with jokers", Solve: day7(true)})

	// Day 8.
	register(Solution{Name: "day8a", Day: 8, Title: "Haunted Wasteland", Summary: "steps from AAA to ZZZ", Solve: day8a})
	register(Solution{Name: "day8b", Day: 8, Title: "Haunted Wasteland", Summary: "ghost steps by cycle combination", Solve: day8b(ghostLcmSteps)})
	register(Solution{Name: "day8b-lcm", Day: 8, Title: "Haunted Wasteland", Summary: "ghost steps as lcm of cycle lengths", Solve: day8b(ghostCycleLcm)})
	register(Solution{Name: "day8b-brute", Day: 8, Title: "Haunted Wasteland", Summary: "ghost steps by walking in lock step", Solve: day8b(ghostWalk)})

	// Day 9.
	register(Solution{Name: "day9a", Day: 9, Title: "Mirage Maintenance", Summary: "sum of next values", Solve: day9(oasis.SumNext)})
	register(Solution{Name: "day9b", Day: 9, Title: "Mirage Maintenance", Summary: "sum of previous values", Solve: day9(oasis.SumPrevious)})

	// Day 10.
	register(Solution{Name: "day10a", Day: 10, Title: "Pipe Maze", Summary: "farthest distance along the loop", Solve: day10a})
	register(Solution{Name: "day10b", Day: 10, Title: "Pipe Maze", Summary: "tiles enclosed by the loop", Solve: day10b})

	// Day 11.
	register(Solution{Name: "day11a", Day: 11, Title: "Cosmic Expansion", Summary: "galaxy distances, empty space doubled", Solve: day11(func(*Env) int { return 2 })})
	register(Solution{Name: "day11b", Day: 11, Title: "Cosmic Expansion", Summary: "galaxy distances, configured expansion", Solve: day11(func(e *Env) int { return e.config().Cosmos.Expansion })})
}

func day1(spelled bool) SolveFunc {
	return func(_ context.Context, env Env, in string) (int, error) {
		lines := input.NonEmptyLines(in)
		env.logger().Debug("calibration document", zap.Int("lines", len(lines)), zap.Bool("spelled", spelled))
		if spelled {
			return trebuchet.Sum(lines, trebuchet.WithSpelledDigits())
		}
		return trebuchet.Sum(lines)
	}
}

func parseGames(env Env, in string) ([]cubes.Game, error) {
	games, err := cubes.Parse(input.NonEmptyLines(in))
	if err != nil {
		return nil, err
	}
	env.logger().Debug("games parsed", zap.Int("games", len(games)))
	return games, nil
}

func day2a(_ context.Context, env Env, in string) (int, error) {
	games, err := parseGames(env, in)
	if err != nil {
		return 0, err
	}
	return cubes.SumPossible(games, cubes.DefaultBag), nil
}

func day2b(_ context.Context, env Env, in string) (int, error) {
	games, err := parseGames(env, in)
	if err != nil {
		return 0, err
	}
	return cubes.SumPower(games), nil
}

func parseSchematic(env Env, in string) (*schematic.Schematic, error) {
	s, err := schematic.Parse(input.NonEmptyLines(in))
	if err != nil {
		return nil, err
	}
	env.logger().Debug("schematic parsed", zap.Int("numbers", len(s.Numbers)))
	return s, nil
}

func day3a(_ context.Context, env Env, in string) (int, error) {
	s, err := parseSchematic(env, in)
	if err != nil {
		return 0, err
	}
	return s.SumPartNumbers(), nil
}

func day3b(_ context.Context, env Env, in string) (int, error) {
	s, err := parseSchematic(env, in)
	if err != nil {
		return 0, err
	}
	return s.SumGearRatios(), nil
}

func parseCards(env Env, in string) ([]scratchcards.Card, error) {
	cards, err := scratchcards.Parse(input.NonEmptyLines(in))
	if err != nil {
		return nil, err
	}
	env.logger().Debug("cards parsed", zap.Int("cards", len(cards)))
	return cards, nil
}

func day4a(_ context.Context, env Env, in string) (int, error) {
	cards, err := parseCards(env, in)
	if err != nil {
		return 0, err
	}
	return scratchcards.TotalPoints(cards), nil
}

func day4b(_ context.Context, env Env, in string) (int, error) {
	cards, err := parseCards(env, in)
	if err != nil {
		return 0, err
	}
	return scratchcards.CountCopies(cards), nil
}

func parseAlmanac(env Env, in string) (*almanac.Almanac, error) {
	a, err := almanac.Parse(in)
	if err != nil {
		return nil, err
	}
	env.logger().Debug("almanac parsed", zap.Int("seeds", len(a.Seeds)), zap.Int("maps", len(a.Maps)))
	return a, nil
}

func day5a(_ context.Context, env Env, in string) (int, error) {
	a, err := parseAlmanac(env, in)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation()
}

func day5b(ctx context.Context, env Env, in string) (int, error) {
	a, err := parseAlmanac(env, in)
	if err != nil {
		return 0, err
	}
	workers := env.config().Workers()
	env.logger().Debug("scanning seed ranges", zap.Int("workers", workers))
	return a.LowestRangeLocationBrute(ctx, workers)
}

func day5b2(_ context.Context, env Env, in string) (int, error) {
	a, err := parseAlmanac(env, in)
	if err != nil {
		return 0, err
	}
	return a.LowestRangeLocation()
}

func day6a(_ context.Context, env Env, in string) (int, error) {
	races, err := boatrace.Parse(input.NonEmptyLines(in))
	if err != nil {
		return 0, err
	}
	env.logger().Debug("races parsed", zap.Int("races", len(races)))
	return boatrace.Product(races), nil
}

func day6b(_ context.Context, env Env, in string) (int, error) {
	race, err := boatrace.ParseJoined(input.NonEmptyLines(in))
	if err != nil {
		return 0, err
	}
	env.logger().Debug("race joined", zap.Int("time", race.Time), zap.Int("record", race.Record))
	return race.Wins(), nil
}

func day7(jokers bool) SolveFunc {
	return func(_ context.Context, env Env, in string) (int, error) {
		var opts []camelcards.Option
		if jokers {
			opts = append(opts, camelcards.WithJokers())
		}
		hands, err := camelcards.Parse(input.NonEmptyLines(in), opts...)
		if err != nil {
			return 0, err
		}
		env.logger().Debug("hands parsed", zap.Int("hands", len(hands)), zap.Bool("jokers", jokers))
		return camelcards.Winnings(hands), nil
	}
}

func parseNetwork(ctx context.Context, env Env, in string) (*network.Network, []network.Option, error) {
	n, err := network.Parse(in)
	if err != nil {
		return nil, nil, err
	}
	env.logger().Debug("network parsed",
		zap.Int("instructions", len(n.Instructions)),
		zap.Int("nodes", len(n.Nodes)))
	opts := []network.Option{
		network.WithContext(ctx),
		network.WithMaxSteps(env.config().Network.MaxSteps),
	}
	return n, opts, nil
}

func day8a(ctx context.Context, env Env, in string) (int, error) {
	n, opts, err := parseNetwork(ctx, env, in)
	if err != nil {
		return 0, err
	}
	return n.Steps("AAA", network.Is("ZZZ"), opts...)
}

type ghostSolver func(n *network.Network, opts []network.Option) (int, error)

func ghostLcmSteps(n *network.Network, opts []network.Option) (int, error) {
	return n.LcmSteps(network.EndsWith('A'), network.EndsWith('Z'), opts...)
}

func ghostCycleLcm(n *network.Network, opts []network.Option) (int, error) {
	return n.CycleLcm(network.EndsWith('A'), network.EndsWith('Z'), opts...)
}

func ghostWalk(n *network.Network, opts []network.Option) (int, error) {
	return n.GhostWalk(network.EndsWith('A'), network.EndsWith('Z'), opts...)
}

func day8b(solve ghostSolver) SolveFunc {
	return func(ctx context.Context, env Env, in string) (int, error) {
		n, opts, err := parseNetwork(ctx, env, in)
		if err != nil {
			return 0, err
		}
		env.logger().Debug("ghosts", zap.Strings("starts", n.Starts(network.EndsWith('A'))))
		return solve(n, opts)
	}
}

func day9(sum func([][]int) (int, error)) SolveFunc {
	return func(_ context.Context, env Env, in string) (int, error) {
		hs, err := oasis.Parse(input.NonEmptyLines(in))
		if err != nil {
			return 0, err
		}
		env.logger().Debug("histories parsed", zap.Int("histories", len(hs)))
		return sum(hs)
	}
}

func parseField(env Env, in string) (*pipes.Field, error) {
	f, err := pipes.Parse(input.NonEmptyLines(in))
	if err != nil {
		return nil, err
	}
	env.logger().Debug("pipe field parsed",
		zap.Int("width", f.Width()),
		zap.Int("height", f.Height()),
		zap.Stringer("start", f.Start))
	return f, nil
}

func day10a(_ context.Context, env Env, in string) (int, error) {
	f, err := parseField(env, in)
	if err != nil {
		return 0, err
	}
	for _, a := range f.FindLoops() {
		if a.Err != nil {
			env.logger().Debug("no loop", zap.Stringer("heading", a.Heading), zap.Error(a.Err))
		}
	}
	p, d, err := f.Farthest()
	if err != nil {
		return 0, err
	}
	env.logger().Debug("farthest tile", zap.Stringer("at", p), zap.Int("distance", d))
	return d, nil
}

func day10b(_ context.Context, env Env, in string) (int, error) {
	f, err := parseField(env, in)
	if err != nil {
		return 0, err
	}
	return f.EnclosedTiles()
}

func day11(factor func(*Env) int) SolveFunc {
	return func(_ context.Context, env Env, in string) (int, error) {
		im, err := cosmos.Parse(input.NonEmptyLines(in))
		if err != nil {
			return 0, err
		}
		k := factor(&env)
		env.logger().Debug("image parsed",
			zap.Int("galaxies", len(im.Galaxies)),
			zap.Ints("empty_rows", im.EmptyRows()),
			zap.Ints("empty_cols", im.EmptyCols()),
			zap.Int("factor", k))
		sum, err := im.SumDistances(k)
		if err != nil {
			return 0, fmt.Errorf("day 11: %w", err)
		}
		return sum, nil
	}
}
