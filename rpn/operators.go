package rpn

import "time"

// The OpXxx functions are the sole implementation of calculator semantics:
// the interpreter, the JIT warm-up pass, and (indirectly, through the
// trampoline shims in trampoline_amd64.go) the translated native path all
// route through these same functions operating on the same Operands.
//
// Each returns the value it would report as the expression's result
// (mirroring the reference's Operators::op_T, which returns its pushed
// or peeked value) together with any error. All arithmetic relies on
// Go's defined wraparound behaviour for signed integer overflow,
// including division by -1 of the most negative value.

func OpNop(o *Operands) (int64, error) {
	return 0, nil
}

func OpI64(o *Operands, k int64) (int64, error) {
	if err := o.push(k); err != nil {
		return 0, err
	}
	return k, nil
}

func OpTop(o *Operands) (int64, error) {
	return o.top()
}

func OpPop(o *Operands) (int64, error) {
	return o.pop()
}

func OpClr(o *Operands) (int64, error) {
	return o.clear(), nil
}

// OpDup pops once and pushes the value back twice.
func OpDup(o *Operands) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	if err := o.push(v); err != nil {
		return 0, err
	}
	if err := o.push(v); err != nil {
		return 0, err
	}
	return v, nil
}

// OpXch swaps the top two values: ..., b, a -> ..., a, b.
func OpXch(o *Operands) (int64, error) {
	a, err := o.pop()
	if err != nil {
		return 0, err
	}
	b, err := o.pop()
	if err != nil {
		return 0, err
	}
	if err := o.push(a); err != nil {
		return 0, err
	}
	if err := o.push(b); err != nil {
		return 0, err
	}
	return b, nil
}

// OpSto pops the index then the value: ..., value, index -> ...; reg[index] = value.
func OpSto(o *Operands) (int64, error) {
	index, err := o.pop()
	if err != nil {
		return 0, err
	}
	value, err := o.pop()
	if err != nil {
		return 0, err
	}
	return o.setRegister(index, value)
}

// OpRcl pops the index and pushes reg[index].
func OpRcl(o *Operands) (int64, error) {
	index, err := o.pop()
	if err != nil {
		return 0, err
	}
	value, err := o.getRegister(index)
	if err != nil {
		return 0, err
	}
	if err := o.push(value); err != nil {
		return 0, err
	}
	return value, nil
}

// OpAbs wraps: abs(math.MinInt64) == math.MinInt64.
func OpAbs(o *Operands) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	r := v
	if r < 0 {
		r = -r
	}
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

// OpNeg wraps: neg(math.MinInt64) == math.MinInt64.
func OpNeg(o *Operands) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	r := -v
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

func OpAdd(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b + a }) }
func OpSub(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b - a }) }
func OpMul(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b * a }) }

// OpDiv pops both operands before checking for a zero divisor, so a
// failing division still leaves the stack two shorter — the resolution
// this port chose for the spec's deliberately ambiguous pop-order
// property, matching the reference's Operators::op_div.
func OpDiv(o *Operands) (int64, error) {
	a, err := o.pop()
	if err != nil {
		return 0, err
	}
	b, err := o.pop()
	if err != nil {
		return 0, err
	}
	if a == 0 {
		return 0, ErrArithmeticZero
	}
	r := b / a
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

func OpMod(o *Operands) (int64, error) {
	a, err := o.pop()
	if err != nil {
		return 0, err
	}
	b, err := o.pop()
	if err != nil {
		return 0, err
	}
	if a == 0 {
		return 0, ErrArithmeticZero
	}
	r := b % a
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

func OpCpl(o *Operands) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	r := ^v
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

func OpAnd(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b & a }) }
func OpIor(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b | a }) }
func OpXor(o *Operands) (int64, error) { return binary(o, func(b, a int64) int64 { return b ^ a }) }

func OpShl(o *Operands) (int64, error) {
	return binary(o, func(b, a int64) int64 { return b << (uint64(a) & 63) })
}

func OpShr(o *Operands) (int64, error) {
	return binary(o, func(b, a int64) int64 { return b >> (uint64(a) & 63) })
}

func OpInc(o *Operands) (int64, error) { return unary(o, func(v int64) int64 { return v + 1 }) }
func OpDec(o *Operands) (int64, error) { return unary(o, func(v int64) int64 { return v - 1 }) }

// OpHlt pops a millisecond count and blocks the calling goroutine for
// that long, with no cancellation, then returns the value it slept for.
func OpHlt(o *Operands) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	if v > 0 {
		time.Sleep(time.Duration(v) * time.Millisecond)
	}
	return v, nil
}

// binary pops a (top) then b (next-to-top) and pushes fn(b, a), matching
// the operand order spec.md's opcode table documents as "b a -> b<>a".
func binary(o *Operands, fn func(b, a int64) int64) (int64, error) {
	a, err := o.pop()
	if err != nil {
		return 0, err
	}
	b, err := o.pop()
	if err != nil {
		return 0, err
	}
	r := fn(b, a)
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}

func unary(o *Operands, fn func(v int64) int64) (int64, error) {
	v, err := o.pop()
	if err != nil {
		return 0, err
	}
	r := fn(v)
	if err := o.push(r); err != nil {
		return 0, err
	}
	return r, nil
}
