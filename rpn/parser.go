package rpn

import (
	"fmt"
	"strconv"
	"strings"
)

// dispatch is a table of token -> action, built once at package init.
// Every action takes the listener under dispatch and returns whatever
// error the listener produced; the only token that needs the raw
// operand (an integer literal) is handled separately in Parse, since
// i64 is deliberately not accepted as a literal keyword (consistent
// with the reference parser, whose token table comments it out).
var dispatch = map[string]func(Listener) error{
	"nop": func(l Listener) error { return l.OpNop() },
	"top": func(l Listener) error { return l.OpTop() },
	"pop": func(l Listener) error { return l.OpPop() },
	"clr": func(l Listener) error { return l.OpClr() },
	"dup": func(l Listener) error { return l.OpDup() },
	"xch": func(l Listener) error { return l.OpXch() },
	"sto": func(l Listener) error { return l.OpSto() },
	"rcl": func(l Listener) error { return l.OpRcl() },
	"abs": func(l Listener) error { return l.OpAbs() },
	"neg": func(l Listener) error { return l.OpNeg() },

	"add": func(l Listener) error { return l.OpAdd() },
	"+":   func(l Listener) error { return l.OpAdd() },
	"sub": func(l Listener) error { return l.OpSub() },
	"-":   func(l Listener) error { return l.OpSub() },
	"mul": func(l Listener) error { return l.OpMul() },
	"*":   func(l Listener) error { return l.OpMul() },
	"div": func(l Listener) error { return l.OpDiv() },
	"/":   func(l Listener) error { return l.OpDiv() },
	"mod": func(l Listener) error { return l.OpMod() },
	"%":   func(l Listener) error { return l.OpMod() },
	"cpl": func(l Listener) error { return l.OpCpl() },
	"~":   func(l Listener) error { return l.OpCpl() },
	"and": func(l Listener) error { return l.OpAnd() },
	"&":   func(l Listener) error { return l.OpAnd() },
	"ior": func(l Listener) error { return l.OpIor() },
	"|":   func(l Listener) error { return l.OpIor() },
	"xor": func(l Listener) error { return l.OpXor() },
	"^":   func(l Listener) error { return l.OpXor() },
	"shl": func(l Listener) error { return l.OpShl() },
	"<<":  func(l Listener) error { return l.OpShl() },
	"shr": func(l Listener) error { return l.OpShr() },
	">>":  func(l Listener) error { return l.OpShr() },
	"inc": func(l Listener) error { return l.OpInc() },
	"++":  func(l Listener) error { return l.OpInc() },
	"dec": func(l Listener) error { return l.OpDec() },
	"--":  func(l Listener) error { return l.OpDec() },

	"hlt": func(l Listener) error { return l.OpHlt() },
	"run": func(l Listener) error { return l.OpRun() },

	"rnd": expandRnd,
	"now": expandNow,
	"fib": expandFib,
}

func init() {
	for i := int64(0); i < 10; i++ {
		i := i
		dispatch[fmt.Sprintf("st%d", i)] = func(l Listener) error { return expandSt(l, i) }
		dispatch[fmt.Sprintf("rc%d", i)] = func(l Listener) error { return expandRc(l, i) }
	}
}

// Parser tokenizes a whitespace-separated RPN expression and dispatches
// each token to a Listener, falling back to a base-10 signed integer
// literal when the token isn't a keyword.
type Parser struct {
	listener Listener
}

func NewParser(listener Listener) *Parser {
	return &Parser{listener: listener}
}

// Parse feeds every token of expr to the parser's listener in order,
// stopping at the first error (including ErrUnknownToken for anything
// that is neither a keyword nor a parseable integer literal).
func (p *Parser) Parse(expr string) error {
	for _, token := range strings.Fields(expr) {
		if action, ok := dispatch[token]; ok {
			if err := action(p.listener); err != nil {
				return err
			}
			continue
		}
		if value, err := strconv.ParseInt(token, 10, 64); err == nil {
			if err := p.listener.OpI64(value); err != nil {
				return err
			}
			continue
		}
		return fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return nil
}
