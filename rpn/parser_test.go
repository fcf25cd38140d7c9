package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParserExecutesSimpleExpression(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Execute("2 3 +"))
	v, err := calc.Result()
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}

func TestParserAcceptsSymbolicAliases(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Execute("10 4 -"))
	v, err := calc.Result()
	require.NoError(t, err)
	require.Equal(t, int64(6), v)
}

func TestParserRejectsI64AsALiteralKeyword(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	err = calc.Execute("i64")
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestParserRejectsUnknownToken(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	err = calc.Execute("2 3 frobnicate")
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestParserStMacroStoresIntoFixedRegister(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Execute("77 st3"))
	require.Equal(t, int64(77), calc.Registers()[3])
}

func TestParserFibExpandsToKnownSequence(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Execute("0 1 fib fib fib fib"))
	v, err := calc.Result()
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}
