package puzzles

import (
	"fmt"
	"math/bits"

	"github.com/roach88/advent/internal/parser"
)

// Priority returns 1..26 for a..z and 27..52 for A..Z.
func Priority(item byte) (int, bool) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, true
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, true
	}
	return 0, false
}

// itemSet has bit p set for every item of priority p. offset shifts the
// column reported for an invalid item.
func itemSet(items string, offset int) (uint64, error) {
	var set uint64
	for i := 0; i < len(items); i++ {
		p, ok := Priority(items[i])
		if !ok {
			return 0, fmt.Errorf("invalid item %q at column %d", items[i], offset+i+1)
		}
		set |= 1 << p
	}
	return set, nil
}

func singlePriority(set uint64) (int, error) {
	if n := bits.OnesCount64(set); n != 1 {
		return 0, fmt.Errorf("want exactly one shared item, found %d", n)
	}
	return bits.TrailingZeros64(set), nil
}

// SharedItemPriority returns the priority of the one item present in both
// halves of a rucksack.
func SharedItemPriority(rucksack string) (int, error) {
	if len(rucksack)%2 != 0 {
		return 0, fmt.Errorf("odd item count %d", len(rucksack))
	}
	half := len(rucksack) / 2
	left, err := itemSet(rucksack[:half], 0)
	if err != nil {
		return 0, err
	}
	right, err := itemSet(rucksack[half:], half)
	if err != nil {
		return 0, err
	}
	return singlePriority(left & right)
}

// BadgePriorities returns the priority of the one item shared by each group
// of three consecutive rucksacks.
func BadgePriorities(rucksacks []string) ([]int, error) {
	if len(rucksacks)%3 != 0 {
		return nil, fmt.Errorf("%d rucksacks do not form groups of three", len(rucksacks))
	}
	out := make([]int, 0, len(rucksacks)/3)
	for g := 0; g < len(rucksacks); g += 3 {
		common := ^uint64(0)
		for i := g; i < g+3; i++ {
			set, err := itemSet(rucksacks[i], 0)
			if err != nil {
				return nil, parser.RecordError(i, rucksacks[i], "%v", err)
			}
			common &= set
		}
		p, err := singlePriority(common)
		if err != nil {
			return nil, parser.RecordError(g, rucksacks[g], "group %d: %v", g/3, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

var day03Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	priorities, err := parser.MapRecords(lines, SharedItemPriority)
	if err != nil {
		return 0, err
	}
	return sum(priorities), nil
})

var day03Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	priorities, err := BadgePriorities(lines)
	if err != nil {
		return 0, err
	}
	return sum(priorities), nil
})
