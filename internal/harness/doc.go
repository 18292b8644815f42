// Package harness runs known-answer scenarios against the daily solutions.
//
// A scenario is a YAML file naming a day, an input file and assertions about
// the two answers:
//
//	name: day11_sample
//	description: "Monkey sample, relief and modular variants"
//	day: 11
//	input: ../internal/puzzles/testdata/day11.txt
//	assertions:
//	  - type: answer_equals
//	    part: 1
//	    value: "10605"
//	  - type: answer_equals
//	    part: 2
//	    value: "2713310158"
//
// Scenarios may override configuration for their own run through params
// (rope_knots, relief_rounds, relief_divisor, modular_rounds) and may expect
// a part to fail with error_contains.
//
// Each part runs even when the other fails, and failures are recorded in the
// Result instead of aborting, so a scenario can describe malformed input.
// RunWithGolden additionally snapshots the answers as canonical JSON.
package harness
