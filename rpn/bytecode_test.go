package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteCodeResetFillsWithNop(t *testing.T) {
	bc := NewByteCode()
	require.NoError(t, bc.EmitAdd())
	bc.Reset()
	require.Equal(t, 0, bc.Len())
	for _, b := range bc.data {
		require.Equal(t, OpcodeNop, b)
	}
}

func TestByteCodeI64EncodingIsLittleEndian(t *testing.T) {
	bc := NewByteCode()
	require.NoError(t, bc.EmitI64(0x0102030405060708))
	got := bc.Bytes()
	require.Len(t, got, 9)
	require.Equal(t, OpcodeI64, got[0])
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, got[1:])
}

func TestByteCodeOverflowsAtCapacity(t *testing.T) {
	bc := NewByteCode()
	for i := 0; i < DefaultByteCodeCapacity; i++ {
		require.NoError(t, bc.EmitNop())
	}
	require.ErrorIs(t, bc.EmitNop(), ErrBytecodeFull)
}

func TestHostCodeResetFillsWithRet(t *testing.T) {
	hc, err := NewHostCode()
	require.NoError(t, err)
	defer hc.Close()

	require.NoError(t, hc.PushRbp())
	hc.Reset()
	require.Equal(t, hc.Begin(), hc.End())
	for _, b := range hc.mem {
		require.Equal(t, hostCodeRet, b)
	}
}

func TestBasicBlockInvalidWhenUntranslated(t *testing.T) {
	hc, err := NewHostCode()
	require.NoError(t, err)
	defer hc.Close()

	block := newBasicBlock(hc.Begin(), hc.End())
	require.False(t, block.Valid())
	require.ErrorIs(t, block.Execute(), ErrInvalidBasicBlock)
}
