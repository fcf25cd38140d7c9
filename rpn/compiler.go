package rpn

// Compiler is the bytecode-emitting Listener: every core op appends its
// tag (and, for i64, its encoded immediate) to a ByteCode buffer instead
// of touching any operand state.
type Compiler struct {
	bytecode *ByteCode
	hostcode *HostCode
}

// NewCompiler resets both buffers and returns a Compiler over them,
// mirroring the reference Compiler's constructor.
func NewCompiler(bytecode *ByteCode, hostcode *HostCode) *Compiler {
	bytecode.Reset()
	hostcode.Reset()
	return &Compiler{bytecode: bytecode, hostcode: hostcode}
}

func (c *Compiler) OpNop() error      { return c.bytecode.EmitNop() }
func (c *Compiler) OpI64(k int64) error { return c.bytecode.EmitI64(k) }
func (c *Compiler) OpTop() error      { return c.bytecode.EmitTop() }
func (c *Compiler) OpPop() error      { return c.bytecode.EmitPop() }
func (c *Compiler) OpClr() error      { return c.bytecode.EmitClr() }
func (c *Compiler) OpDup() error      { return c.bytecode.EmitDup() }
func (c *Compiler) OpXch() error      { return c.bytecode.EmitXch() }
func (c *Compiler) OpSto() error      { return c.bytecode.EmitSto() }
func (c *Compiler) OpRcl() error      { return c.bytecode.EmitRcl() }
func (c *Compiler) OpAbs() error      { return c.bytecode.EmitAbs() }
func (c *Compiler) OpNeg() error      { return c.bytecode.EmitNeg() }
func (c *Compiler) OpAdd() error      { return c.bytecode.EmitAdd() }
func (c *Compiler) OpSub() error      { return c.bytecode.EmitSub() }
func (c *Compiler) OpMul() error      { return c.bytecode.EmitMul() }
func (c *Compiler) OpDiv() error      { return c.bytecode.EmitDiv() }
func (c *Compiler) OpMod() error      { return c.bytecode.EmitMod() }
func (c *Compiler) OpCpl() error      { return c.bytecode.EmitCpl() }
func (c *Compiler) OpAnd() error      { return c.bytecode.EmitAnd() }
func (c *Compiler) OpIor() error      { return c.bytecode.EmitIor() }
func (c *Compiler) OpXor() error      { return c.bytecode.EmitXor() }
func (c *Compiler) OpShl() error      { return c.bytecode.EmitShl() }
func (c *Compiler) OpShr() error      { return c.bytecode.EmitShr() }
func (c *Compiler) OpInc() error      { return c.bytecode.EmitInc() }
func (c *Compiler) OpDec() error      { return c.bytecode.EmitDec() }

// OpHlt cannot be compiled: the opcode table has no tag for it, exactly
// as the reference's ByteCode has no emit_hlt and its Compiler never
// overrides op_hlt. Reused sentinel rather than a dedicated one, since
// the failure mode (an instruction with no bytecode representation) is
// the same one op_run hits.
func (c *Compiler) OpHlt() error { return ErrCompileRunForbidden }

// OpRun cannot be compiled: JIT-ing a call to the JIT makes no sense.
func (c *Compiler) OpRun() error { return ErrCompileRunForbidden }
