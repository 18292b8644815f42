package monkey

import (
	"fmt"
	"math/bits"
)

// Op is the arithmetic operation of a Rule.
type Op uint8

const (
	// OpAdd computes old + operand.
	OpAdd Op = iota + 1
	// OpMul computes old * operand.
	OpMul
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Operand is the right-hand side of a Rule: either a constant or the old value.
type Operand struct {
	Old   bool
	Value uint64
}

// Const returns a constant operand.
func Const(v uint64) Operand {
	return Operand{Value: v}
}

// Old returns the operand referring to the item's own value.
func Old() Operand {
	return Operand{Old: true}
}

func (o Operand) resolve(old uint64) uint64 {
	if o.Old {
		return old
	}
	return o.Value
}

func (o Operand) String() string {
	if o.Old {
		return "old"
	}
	return fmt.Sprintf("%d", o.Value)
}

// Rule is an actor's transformation: new = old <Op> <Operand>.
type Rule struct {
	Op      Op
	Operand Operand
}

// Add returns the rule old + operand.
func Add(operand Operand) Rule {
	return Rule{Op: OpAdd, Operand: operand}
}

// Mul returns the rule old * operand.
func Mul(operand Operand) Rule {
	return Rule{Op: OpMul, Operand: operand}
}

// Apply computes the new value. ok is false if the result does not fit in a
// uint64 or the rule has no valid Op.
func (r Rule) Apply(old uint64) (v uint64, ok bool) {
	operand := r.Operand.resolve(old)
	switch r.Op {
	case OpAdd:
		sum, carry := bits.Add64(old, operand, 0)
		return sum, carry == 0
	case OpMul:
		hi, lo := bits.Mul64(old, operand)
		return lo, hi == 0
	default:
		return 0, false
	}
}

func (r Rule) String() string {
	return fmt.Sprintf("new = old %s %s", r.Op, r.Operand)
}
