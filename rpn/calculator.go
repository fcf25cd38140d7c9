package rpn

import (
	"fmt"
	"runtime/debug"
)

// Calculator is the direct-execution Listener and the public façade:
// Execute interprets an expression immediately, Compile emits bytecode
// for it, Run translates (once) and then replays the cached native
// code, Clear empties the stack, and Result reports the top of stack.
//
// A Calculator's address is baked into every trampoline its Translator
// emits, so it must never be copied after its first Compile/Run — the
// package only ever hands out *Calculator, and Go's garbage collector
// does not relocate heap objects, so this holds for as long as the
// caller keeps the pointer alive.
type Calculator struct {
	operands Operands
	bytecode *ByteCode
	hostcode *HostCode
	logger   Logger
}

func NewCalculator(logger Logger) (*Calculator, error) {
	hostcode, err := NewHostCode()
	if err != nil {
		return nil, err
	}
	return &Calculator{
		bytecode: NewByteCode(),
		hostcode: hostcode,
		logger:   logger,
	}, nil
}

// Close releases the calculator's executable memory page.
func (c *Calculator) Close() error { return c.hostcode.Close() }

// Registers returns a copy of the 32-cell register file.
func (c *Calculator) Registers() [numRegisters]int64 { return c.operands.Registers }

// Stack returns a copy of the live operand stack, bottom first.
func (c *Calculator) Stack() []int64 { return c.operands.Snapshot() }

// Execute parses expr and dispatches every token directly against this
// Calculator's operand state.
func (c *Calculator) Execute(expr string) error {
	c.logger.Print(fmt.Sprintf("executing expression <%s>", expr))
	if err := NewParser(c).Parse(expr); err != nil {
		c.logger.Error(err.Error())
		return err
	}
	c.logResult()
	return nil
}

// Compile parses expr and emits it as bytecode, resetting both the
// bytecode and host-code buffers first.
func (c *Calculator) Compile(expr string) error {
	c.logger.Print(fmt.Sprintf("compiling expression <%s>", expr))
	compiler := NewCompiler(c.bytecode, c.hostcode)
	if err := NewParser(compiler).Parse(expr); err != nil {
		c.logger.Error(err.Error())
		return err
	}
	c.logResult()
	return nil
}

// Run executes the compiled bytecode: if a prior Run already translated
// it, the cached native code runs directly; otherwise the bytecode is
// translated to native code and executed for the first time, one opcode
// at a time, in the same pass.
//
// The garbage collector is held off for the duration of the call: once
// control passes into generated machine code the Go runtime cannot
// preempt it at an instruction boundary it recognizes, so a GC running
// concurrently would get no cooperation from that code. Allocation
// during Run is limited to what the eager warm-up pass needs, so
// disabling collection briefly is cheap.
func (c *Calculator) Run() (err error) {
	c.logger.Print("running the compiled expression...")

	gcPercent := debug.SetGCPercent(-1)
	defer debug.SetGCPercent(gcPercent)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rpn: recovered from generated machine code: %v", r)
		}
	}()

	block := newBasicBlock(c.hostcode.Begin(), c.hostcode.End())

	if block.Valid() {
		c.logger.Trace("already translated, executing generated machine code")
		err = block.Execute()
	} else {
		c.logger.Trace("never translated, executing bytecode and translating")
		err = NewTranslator(&c.operands, c.bytecode, c.hostcode).Translate()
	}
	if err != nil {
		c.logger.Error(err.Error())
		return err
	}
	c.logResult()
	return nil
}

// Clear empties the operand stack.
func (c *Calculator) Clear() error {
	c.logger.Print("clearing the stack...")
	c.operands.clear()
	c.logResult()
	return nil
}

// Result reports the value on top of the stack.
func (c *Calculator) Result() (int64, error) {
	return c.operands.top()
}

func (c *Calculator) logResult() {
	v, err := c.Result()
	if err != nil {
		c.logger.Print("no result <empty stack>")
		return
	}
	c.logger.Print(fmt.Sprintf("result is %d", v))
}

// Listener implementation: the direct executor.

func (c *Calculator) OpNop() error { _, err := OpNop(&c.operands); return err }
func (c *Calculator) OpI64(k int64) error { _, err := OpI64(&c.operands, k); return err }
func (c *Calculator) OpTop() error { _, err := OpTop(&c.operands); return err }
func (c *Calculator) OpPop() error { _, err := OpPop(&c.operands); return err }
func (c *Calculator) OpClr() error { _, err := OpClr(&c.operands); return err }
func (c *Calculator) OpDup() error { _, err := OpDup(&c.operands); return err }
func (c *Calculator) OpXch() error { _, err := OpXch(&c.operands); return err }
func (c *Calculator) OpSto() error { _, err := OpSto(&c.operands); return err }
func (c *Calculator) OpRcl() error { _, err := OpRcl(&c.operands); return err }
func (c *Calculator) OpAbs() error { _, err := OpAbs(&c.operands); return err }
func (c *Calculator) OpNeg() error { _, err := OpNeg(&c.operands); return err }
func (c *Calculator) OpAdd() error { _, err := OpAdd(&c.operands); return err }
func (c *Calculator) OpSub() error { _, err := OpSub(&c.operands); return err }
func (c *Calculator) OpMul() error { _, err := OpMul(&c.operands); return err }
func (c *Calculator) OpDiv() error { _, err := OpDiv(&c.operands); return err }
func (c *Calculator) OpMod() error { _, err := OpMod(&c.operands); return err }
func (c *Calculator) OpCpl() error { _, err := OpCpl(&c.operands); return err }
func (c *Calculator) OpAnd() error { _, err := OpAnd(&c.operands); return err }
func (c *Calculator) OpIor() error { _, err := OpIor(&c.operands); return err }
func (c *Calculator) OpXor() error { _, err := OpXor(&c.operands); return err }
func (c *Calculator) OpShl() error { _, err := OpShl(&c.operands); return err }
func (c *Calculator) OpShr() error { _, err := OpShr(&c.operands); return err }
func (c *Calculator) OpInc() error { _, err := OpInc(&c.operands); return err }
func (c *Calculator) OpDec() error { _, err := OpDec(&c.operands); return err }
func (c *Calculator) OpHlt() error { _, err := OpHlt(&c.operands); return err }

// OpRun lets "run" appear inside an executed expression too, re-entering
// the same cached-or-translate path as the public Run method.
func (c *Calculator) OpRun() error { return c.Run() }
