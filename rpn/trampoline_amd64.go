package rpn

// Every trampolineOpX function is a NOSPLIT routine defined in
// trampoline_amd64.s. Each is the call target the Translator bakes into
// one kind of opcode's native trampoline: `mov rdi, &operands; mov rax,
// &trampolineOpX; call rax` (OP_I64's trampoline additionally loads rsi
// with the decoded immediate before rdi and rax). The shims read those
// incoming registers directly — the same System-V placement the
// reference implementation's Operators functions receive them in — and
// stash them into the package-level state below before calling back
// into the ordinary Go implementation in operators.go. A bare function
// pointer into arbitrary Go code is not a stable call target across Go
// versions (the internal register-based ABI is explicitly undocumented
// as a public contract); routing through these fixed, hand-written entry
// points keeps the actual call targets baked into generated machine code
// stable and independent of that internal ABI.
//
// Per spec.md §5, a Calculator's compiled program is never run
// concurrently with another, so a single shared slot for "the operand
// state the currently executing trampoline targets" is safe — exactly
// mirroring the reference implementation's own constraint that a
// Calculator must not move or be shared across compiled programs.
var (
	jitOperands  *Operands
	jitImmediate int64
	jitErr       error
)

func jitNop() { _, jitErr = OpNop(jitOperands) }
func jitI64() { _, jitErr = OpI64(jitOperands, jitImmediate) }
func jitTop() { _, jitErr = OpTop(jitOperands) }
func jitPop() { _, jitErr = OpPop(jitOperands) }
func jitClr() { _, jitErr = OpClr(jitOperands) }
func jitDup() { _, jitErr = OpDup(jitOperands) }
func jitXch() { _, jitErr = OpXch(jitOperands) }
func jitSto() { _, jitErr = OpSto(jitOperands) }
func jitRcl() { _, jitErr = OpRcl(jitOperands) }
func jitAbs() { _, jitErr = OpAbs(jitOperands) }
func jitNeg() { _, jitErr = OpNeg(jitOperands) }
func jitAdd() { _, jitErr = OpAdd(jitOperands) }
func jitSub() { _, jitErr = OpSub(jitOperands) }
func jitMul() { _, jitErr = OpMul(jitOperands) }
func jitDiv() { _, jitErr = OpDiv(jitOperands) }
func jitMod() { _, jitErr = OpMod(jitOperands) }
func jitCpl() { _, jitErr = OpCpl(jitOperands) }
func jitAnd() { _, jitErr = OpAnd(jitOperands) }
func jitIor() { _, jitErr = OpIor(jitOperands) }
func jitXor() { _, jitErr = OpXor(jitOperands) }
func jitShl() { _, jitErr = OpShl(jitOperands) }
func jitShr() { _, jitErr = OpShr(jitOperands) }
func jitInc() { _, jitErr = OpInc(jitOperands) }
func jitDec() { _, jitErr = OpDec(jitOperands) }

// trampolineOpX are implemented in trampoline_amd64.s. They take no
// Go-visible arguments: their inputs arrive in DI (and, for I64, SI)
// exactly as the hand-emitted call site placed them.
func trampolineOpNop()
func trampolineOpI64()
func trampolineOpTop()
func trampolineOpPop()
func trampolineOpClr()
func trampolineOpDup()
func trampolineOpXch()
func trampolineOpSto()
func trampolineOpRcl()
func trampolineOpAbs()
func trampolineOpNeg()
func trampolineOpAdd()
func trampolineOpSub()
func trampolineOpMul()
func trampolineOpDiv()
func trampolineOpMod()
func trampolineOpCpl()
func trampolineOpAnd()
func trampolineOpIor()
func trampolineOpXor()
func trampolineOpShl()
func trampolineOpShr()
func trampolineOpInc()
func trampolineOpDec()
