package rpn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDupIsIdempotentOnTheValue(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(7))
	v, err := OpDup(&o)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
	require.Equal(t, 2, o.Depth())
	a, _ := o.pop()
	b, _ := o.pop()
	require.Equal(t, a, b)
}

func TestXchComposedWithItselfIsIdentity(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(1))
	require.NoError(t, o.push(2))
	_, err := OpXch(&o)
	require.NoError(t, err)
	_, err = OpXch(&o)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, o.Snapshot())
}

func TestNegMinInt64Wraps(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(math.MinInt64))
	v, err := OpNeg(&o)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestAbsMinInt64Wraps(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(math.MinInt64))
	v, err := OpAbs(&o)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestNegNegIsIdentity(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(42))
	_, err := OpNeg(&o)
	require.NoError(t, err)
	_, err = OpNeg(&o)
	require.NoError(t, err)
	v, _ := o.top()
	require.Equal(t, int64(42), v)
}

func TestCplCplIsIdentity(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(123))
	_, err := OpCpl(&o)
	require.NoError(t, err)
	_, err = OpCpl(&o)
	require.NoError(t, err)
	v, _ := o.top()
	require.Equal(t, int64(123), v)
}

func TestStoRclRoundTrip(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(99))
	require.NoError(t, o.push(5))
	_, err := OpSto(&o)
	require.NoError(t, err)
	require.NoError(t, o.push(5))
	v, err := OpRcl(&o)
	require.NoError(t, err)
	require.Equal(t, int64(99), v)
}

func TestRegisterRangeRejectsOutOfBounds(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(1))
	require.NoError(t, o.push(32))
	_, err := OpSto(&o)
	require.ErrorIs(t, err, ErrRegisterRange)
}

// TestDivPopsBothOperandsBeforeTrapping exercises the chosen resolution
// of the division-by-zero operand-pop ordering: both operands leave the
// stack even though the division never happens.
func TestDivPopsBothOperandsBeforeTrapping(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(10))
	require.NoError(t, o.push(0))
	_, err := OpDiv(&o)
	require.ErrorIs(t, err, ErrArithmeticZero)
	require.Equal(t, 0, o.Depth())
}

func TestModPopsBothOperandsBeforeTrapping(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(10))
	require.NoError(t, o.push(0))
	_, err := OpMod(&o)
	require.ErrorIs(t, err, ErrArithmeticZero)
	require.Equal(t, 0, o.Depth())
}

func TestPopUnderflow(t *testing.T) {
	var o Operands
	_, err := OpPop(&o)
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestRandomRegisterAdvancesOnEveryRecall(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(RegRandom))
	first, err := OpRcl(&o)
	require.NoError(t, err)
	require.NoError(t, o.push(RegRandom))
	second, err := OpRcl(&o)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestClockRegisterTracksWallClock(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(RegClock))
	v, err := OpRcl(&o)
	require.NoError(t, err)
	require.Greater(t, v, int64(0))
}

func TestDivTruncatesTowardZero(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(-7))
	require.NoError(t, o.push(2))
	v, err := OpDiv(&o)
	require.NoError(t, err)
	require.Equal(t, int64(-3), v)
}

func TestShlMasksShiftAmountTo6Bits(t *testing.T) {
	var o Operands
	require.NoError(t, o.push(1))
	require.NoError(t, o.push(64)) // 64 & 63 == 0
	v, err := OpShl(&o)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}
