package monkey

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// BlockDelimiter separates actor setup blocks in an input file.
const BlockDelimiter = "\n\n"

var blockPattern = regexp.MustCompile(`^Monkey (\d+):\n` +
	`  Starting items:(?: (\d+(?:, \d+)*))?\n` +
	`  Operation: new = old ([+*]) (\d+|old)\n` +
	`  Test: divisible by (\d+)\n` +
	`    If true: throw to monkey (\d+)\n` +
	`    If false: throw to monkey (\d+)\n?$`)

// LoadActors reads setup blocks from path and parses them.
func LoadActors(path string) ([]*Actor, error) {
	blocks, err := parser.Load(path, BlockDelimiter)
	if err != nil {
		return nil, err
	}
	return ParseActors(blocks)
}

// ParseActors parses one actor per setup block. Blank blocks are skipped.
//
// A block that does not match the setup format, or whose header number does
// not match its position, fails the whole parse.
func ParseActors(blocks []string) ([]*Actor, error) {
	var actors []*Actor
	for i, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		a, err := parseBlock(i, len(actors), block)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, nil
}

func parseBlock(pos, index int, block string) (*Actor, error) {
	m := blockPattern.FindStringSubmatch(block)
	if m == nil {
		return nil, newParseError(pos, block, "does not match the setup format")
	}

	header, err := strconv.Atoi(m[1])
	if err != nil || header != index {
		return nil, newParseError(pos, block, "header names monkey %s", m[1])
	}

	var items []uint64
	if m[2] != "" {
		for _, field := range strings.Split(m[2], ", ") {
			v, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, newParseError(pos, block, "item %q is not a uint64", field)
			}
			items = append(items, v)
		}
	}

	operand := Old()
	if m[4] != "old" {
		v, err := strconv.ParseUint(m[4], 10, 64)
		if err != nil {
			return nil, newParseError(pos, block, "operand %q is not a uint64", m[4])
		}
		operand = Const(v)
	}
	rule := Add(operand)
	if m[3] == "*" {
		rule = Mul(operand)
	}

	threshold, err := strconv.ParseUint(m[5], 10, 64)
	if err != nil {
		return nil, newParseError(pos, block, "threshold %q is not a uint64", m[5])
	}
	routeTrue, err := strconv.Atoi(m[6])
	if err != nil {
		return nil, newParseError(pos, block, "true route %q is not an index", m[6])
	}
	routeFalse, err := strconv.Atoi(m[7])
	if err != nil {
		return nil, newParseError(pos, block, "false route %q is not an index", m[7])
	}

	return NewActor(index, items, rule, threshold, routeTrue, routeFalse), nil
}
