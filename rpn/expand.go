package rpn

// expandSt and expandRc implement the st0..st9/rc0..rc9 convenience ops
// by pushing the literal register index and forwarding to sto/rcl,
// exactly as the reference's Listener::op_st3 etc. expand.
func expandSt(l Listener, index int64) error {
	if err := l.OpI64(index); err != nil {
		return err
	}
	return l.OpSto()
}

func expandRc(l Listener, index int64) error {
	if err := l.OpI64(index); err != nil {
		return err
	}
	return l.OpRcl()
}

func expandRnd(l Listener) error { return expandRc(l, RegRandom) }
func expandNow(l Listener) error { return expandRc(l, RegClock) }

// expandFib computes the next Fibonacci term from the one on top of the
// stack, using register 20 as scratch: dup; i64 20; sto; add; i64 20;
// rcl; xch.
func expandFib(l Listener) error {
	for _, step := range []func() error{
		l.OpDup,
		func() error { return l.OpI64(regFib) },
		l.OpSto,
		l.OpAdd,
		func() error { return l.OpI64(regFib) },
		l.OpRcl,
		l.OpXch,
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
