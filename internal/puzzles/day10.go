package puzzles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// CRT dimensions.
const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

// Instruction is "noop" or "addx V". A noop takes one cycle, addx two.
type Instruction struct {
	Addx  bool
	Value int
}

// ParseInstruction parses one line of the program.
func ParseInstruction(line string) (Instruction, error) {
	if line == "noop" {
		return Instruction{}, nil
	}
	arg, ok := strings.CutPrefix(line, "addx ")
	if !ok {
		return Instruction{}, fmt.Errorf("unknown instruction")
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return Instruction{}, fmt.Errorf("invalid addx operand %q", arg)
	}
	return Instruction{Addx: true, Value: v}, nil
}

// Trace runs program and returns the X register during each cycle;
// element i is the value during cycle i+1. X starts at 1.
func Trace(program []Instruction) []int {
	x := 1
	trace := make([]int, 0, len(program)*2)
	for _, in := range program {
		trace = append(trace, x)
		if in.Addx {
			trace = append(trace, x)
			x += in.Value
		}
	}
	return trace
}

// SignalStrength sums cycle*X at cycles 20, 60, 100 and so on.
func SignalStrength(trace []int) int {
	total := 0
	for cycle := 20; cycle <= len(trace); cycle += ScreenWidth {
		total += cycle * trace[cycle-1]
	}
	return total
}

// Render draws the CRT: pixel i is lit when the three pixel sprite centered
// on X covers its column. Cycles beyond the trace stay dark.
func Render(trace []int) []string {
	rows := make([]string, ScreenHeight)
	for r := range rows {
		var b strings.Builder
		for c := 0; c < ScreenWidth; c++ {
			i := r*ScreenWidth + c
			if i < len(trace) && trace[i] >= c-1 && trace[i] <= c+1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

func traceProgram(lines []string) ([]int, error) {
	program, err := parser.MapRecords(lines, ParseInstruction)
	if err != nil {
		return nil, err
	}
	return Trace(program), nil
}

var day10Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	trace, err := traceProgram(lines)
	if err != nil {
		return 0, err
	}
	return SignalStrength(trace), nil
})

var day10Part2 = solveLines(func(lines []string, _ Params) (string, error) {
	trace, err := traceProgram(lines)
	if err != nil {
		return "", err
	}
	return strings.Join(Render(trace), "\n"), nil
})
