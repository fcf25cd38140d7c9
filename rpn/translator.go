package rpn

import (
	"encoding/binary"
	"reflect"
	"unsafe"
)

// Translator walks a ByteCode buffer once, emitting a System-V AMD64
// function prologue, one trampoline per opcode, and an epilogue into a
// HostCode buffer — while also running each operator eagerly against
// Operands, so the first Run of a freshly compiled program both
// executes and warms the native fast path in a single pass.
type Translator struct {
	operands *Operands
	bytecode *ByteCode
	hostcode *HostCode
}

func NewTranslator(operands *Operands, bytecode *ByteCode, hostcode *HostCode) *Translator {
	return &Translator{operands: operands, bytecode: bytecode, hostcode: hostcode}
}

type opcodeHandler struct {
	exec      func(*Operands) (int64, error)
	execI64   func(*Operands, int64) (int64, error)
	trampoline func()
}

var opcodeTable = map[byte]opcodeHandler{
	OpcodeNop: {exec: OpNop, trampoline: trampolineOpNop},
	OpcodeI64: {execI64: OpI64, trampoline: trampolineOpI64},
	OpcodeTop: {exec: OpTop, trampoline: trampolineOpTop},
	OpcodePop: {exec: OpPop, trampoline: trampolineOpPop},
	OpcodeClr: {exec: OpClr, trampoline: trampolineOpClr},
	OpcodeDup: {exec: OpDup, trampoline: trampolineOpDup},
	OpcodeXch: {exec: OpXch, trampoline: trampolineOpXch},
	OpcodeSto: {exec: OpSto, trampoline: trampolineOpSto},
	OpcodeRcl: {exec: OpRcl, trampoline: trampolineOpRcl},
	OpcodeAbs: {exec: OpAbs, trampoline: trampolineOpAbs},
	OpcodeNeg: {exec: OpNeg, trampoline: trampolineOpNeg},
	OpcodeAdd: {exec: OpAdd, trampoline: trampolineOpAdd},
	OpcodeSub: {exec: OpSub, trampoline: trampolineOpSub},
	OpcodeMul: {exec: OpMul, trampoline: trampolineOpMul},
	OpcodeDiv: {exec: OpDiv, trampoline: trampolineOpDiv},
	OpcodeMod: {exec: OpMod, trampoline: trampolineOpMod},
	OpcodeCpl: {exec: OpCpl, trampoline: trampolineOpCpl},
	OpcodeAnd: {exec: OpAnd, trampoline: trampolineOpAnd},
	OpcodeIor: {exec: OpIor, trampoline: trampolineOpIor},
	OpcodeXor: {exec: OpXor, trampoline: trampolineOpXor},
	OpcodeShl: {exec: OpShl, trampoline: trampolineOpShl},
	OpcodeShr: {exec: OpShr, trampoline: trampolineOpShr},
	OpcodeInc: {exec: OpInc, trampoline: trampolineOpInc},
	OpcodeDec: {exec: OpDec, trampoline: trampolineOpDec},
}

// trampolineAddr returns the stable entry address of a package-level
// assembly function, suitable for baking into generated code as a
// call target.
func trampolineAddr(fn func()) uint64 {
	return uint64(reflect.ValueOf(fn).Pointer())
}

// Translate emits the prologue, then one trampoline per opcode in the
// bytecode buffer (a [mov rsi, imm64 for i64] / mov rdi, &operands /
// mov rax, &trampoline / call rax sequence per opcode), then the
// epilogue, and returns the first error any eagerly-executed operator
// produced.
func (t *Translator) Translate() error {
	hc := t.hostcode
	if err := hc.PushRbp(); err != nil {
		return err
	}
	if err := hc.MovRbpRsp(); err != nil {
		return err
	}

	operandsAddr := uint64(uintptr(unsafe.Pointer(t.operands)))
	data := t.bytecode.Bytes()

	i := 0
	for i < len(data) {
		op := data[i]
		i++

		handler, ok := opcodeTable[op]
		if !ok {
			return ErrInvalidBytecode
		}

		switch {
		case op == OpcodeI64:
			if i+8 > len(data) {
				return ErrInvalidBytecode
			}
			k := int64(binary.LittleEndian.Uint64(data[i : i+8]))
			i += 8
			if _, err := handler.execI64(t.operands, k); err != nil {
				return err
			}
			if err := hc.MovRsiImm64(uint64(k)); err != nil {
				return err
			}
		default:
			if _, err := handler.exec(t.operands); err != nil {
				return err
			}
		}

		if err := hc.MovRdiImm64(operandsAddr); err != nil {
			return err
		}
		if err := hc.MovRaxImm64(trampolineAddr(handler.trampoline)); err != nil {
			return err
		}
		if err := hc.CallRax(); err != nil {
			return err
		}
	}

	if err := hc.MovRspRbp(); err != nil {
		return err
	}
	if err := hc.PopRbp(); err != nil {
		return err
	}
	return hc.Ret()
}
