package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileThenRunMatchesDirectExecute(t *testing.T) {
	expr := "7 6 * 2 +"

	direct, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer direct.Close()
	require.NoError(t, direct.Execute(expr))
	wantResult, err := direct.Result()
	require.NoError(t, err)

	jit, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer jit.Close()
	require.NoError(t, jit.Compile(expr))
	require.NoError(t, jit.Run())
	gotResult, err := jit.Result()
	require.NoError(t, err)

	require.Equal(t, wantResult, gotResult)
}

func TestRunIsDeterministicAcrossRepeatedCallsFromTheSameStack(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Compile("3 4 +"))
	require.NoError(t, calc.Run())
	first, err := calc.Result()
	require.NoError(t, err)

	require.NoError(t, calc.Clear())
	require.NoError(t, calc.Run())
	second, err := calc.Result()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCompileRejectsRun(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	err = calc.Compile("1 2 + run")
	require.ErrorIs(t, err, ErrCompileRunForbidden)
}

func TestCompileRejectsHlt(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	err = calc.Compile("100 hlt")
	require.ErrorIs(t, err, ErrCompileRunForbidden)
}

func TestResultOnEmptyStackUnderflows(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	_, err = calc.Result()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestClearEmptiesStack(t *testing.T) {
	calc, err := NewCalculator(NewConsole())
	require.NoError(t, err)
	defer calc.Close()

	require.NoError(t, calc.Execute("1 2 3"))
	require.NoError(t, calc.Clear())
	require.Equal(t, 0, len(calc.Stack()))
}
