package rpn

import "github.com/golang/glog"

// Console is the Logger backed by glog: debug and trace map to the -v
// verbosity gates 2 and 1 respectively, print/alert/error map to glog's plain
// info/warning/error sinks. Per-level enable flags are checked here,
// since glog itself only gates levels through -v, not per-call toggles.
type Console struct {
	debug bool
	trace bool
	print bool
	alert bool
	error bool
}

// NewConsole returns a Console with the reference's default level
// selection: print, alert and error on; debug and trace off.
func NewConsole() *Console {
	return &Console{print: true, alert: true, error: true}
}

func (c *Console) Debug(msg string) {
	if c.debug {
		glog.V(2).Info(msg)
	}
}

func (c *Console) Trace(msg string) {
	if c.trace {
		glog.V(1).Info(msg)
	}
}

func (c *Console) Print(msg string) {
	if c.print {
		glog.Info(msg)
	}
}

func (c *Console) Alert(msg string) {
	if c.alert {
		glog.Warning(msg)
	}
}

func (c *Console) Error(msg string) {
	if c.error {
		glog.Error(msg)
	}
}

func (c *Console) SetDebug(enabled bool) { c.debug = enabled }
func (c *Console) SetTrace(enabled bool) { c.trace = enabled }
func (c *Console) SetPrint(enabled bool) { c.print = enabled }
func (c *Console) SetAlert(enabled bool) { c.alert = enabled }
func (c *Console) SetError(enabled bool) { c.error = enabled }

// SetVerbose toggles every level at once, backing the CLI's
// --verbose/--quiet meta-flags.
func (c *Console) SetVerbose(enabled bool) {
	c.SetDebug(enabled)
	c.SetTrace(enabled)
	c.SetPrint(enabled)
	c.SetAlert(enabled)
	c.SetError(enabled)
}
