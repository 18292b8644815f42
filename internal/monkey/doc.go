// Package monkey implements the round-robin modular simulator.
//
// A simulation holds a fixed, ordered set of actors. Each actor owns a FIFO
// queue of unsigned worry values, a Rule that transforms a value, a
// divisibility Threshold and two routes naming the actor that receives the
// value when the test passes or fails.
//
// # Rounds
//
// One round visits every actor in index order. An actor's turn lasts while its
// queue is non-empty; the condition is re-checked after every item. For each
// item the simulator:
//
//  1. pops the head of the queue
//  2. applies the actor's Rule
//  3. integer-divides by the worry divisor (3 for the relief variant, 1 for none)
//  4. reduces modulo the global modulus
//  5. appends the value to RouteTrue or RouteFalse by the divisibility test
//  6. increments the actor's inspection count
//
// Values routed to a later actor are handled in the same round. Values routed
// to an earlier actor wait for the next round.
//
// # Modulus
//
// The global modulus is the product of every threshold, computed once in New.
// Since (x mod kn) mod n == x mod n, reducing by it never changes the outcome
// of any actor's test while keeping values bounded for any number of rounds.
//
// # Lifecycle
//
// Ready -> Running -> Done. Run drives all rounds in one call; MonkeyBusiness
// is only available once Done. The simulator is single-threaded and not safe
// for concurrent use.
package monkey
