package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rpncalc/rpn"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags groups the CLI's boolean switches; per-level pairs mirror the
// reference's opt_debug/opt_trace/... pairs, each with an on and an off
// spelling, and --verbose/--quiet toggle all five levels at once.
type flags struct {
	verbose, quiet     bool
	debugOn, debugOff  bool
	traceOn, traceOff  bool
	printOn, printOff  bool
	alertOn, alertOff  bool
	errorOn, errorOff  bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "rpncalc [OPTIONS] [EXPR | VERB]...",
		Short: "tiered RPN integer calculator (interpret, compile, JIT)",
		Long: "rpncalc evaluates reverse-polish-notation integer expressions.\n\n" +
			"Expr: a whitespace-separated RPN token sequence, e.g. \"2 3 +\".\n" +
			"Verb: execute | compile | run | clear — applies to the most\n" +
			"      recently given expression.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := rpn.NewConsole()
			applyFlags(console, f)

			calc, err := rpn.NewCalculator(console)
			if err != nil {
				return err
			}
			defer calc.Close()

			return runTokens(calc, args, f.debugOn)
		},
	}

	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "enable every log level")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "disable every log level")
	cmd.Flags().BoolVar(&f.debugOn, "debug", false, "enable the debug log level and the register/stack dump")
	cmd.Flags().BoolVar(&f.debugOff, "no-debug", false, "disable the debug log level")
	cmd.Flags().BoolVar(&f.traceOn, "trace", false, "enable the trace log level")
	cmd.Flags().BoolVar(&f.traceOff, "no-trace", false, "disable the trace log level")
	cmd.Flags().BoolVar(&f.printOn, "print", false, "enable the print log level")
	cmd.Flags().BoolVar(&f.printOff, "no-print", false, "disable the print log level")
	cmd.Flags().BoolVar(&f.alertOn, "alert", false, "enable the alert log level")
	cmd.Flags().BoolVar(&f.alertOff, "no-alert", false, "disable the alert log level")
	cmd.Flags().BoolVar(&f.errorOn, "error", false, "enable the error log level")
	cmd.Flags().BoolVar(&f.errorOff, "no-error", false, "disable the error log level")

	return cmd
}

func applyFlags(console *rpn.Console, f flags) {
	if f.verbose {
		console.SetVerbose(true)
	}
	if f.quiet {
		console.SetVerbose(false)
	}
	if f.debugOn {
		console.SetDebug(true)
	}
	if f.debugOff {
		console.SetDebug(false)
	}
	if f.traceOn {
		console.SetTrace(true)
	}
	if f.traceOff {
		console.SetTrace(false)
	}
	if f.printOn {
		console.SetPrint(true)
	}
	if f.printOff {
		console.SetPrint(false)
	}
	if f.alertOn {
		console.SetAlert(true)
	}
	if f.alertOff {
		console.SetAlert(false)
	}
	if f.errorOn {
		console.SetError(true)
	}
	if f.errorOff {
		console.SetError(false)
	}
}

// runTokens walks the remaining positional arguments in order, the same
// one-pass shape as the reference's Program::run: a verb (execute,
// compile, run, clear) applies to the most recently seen non-keyword
// token, which becomes the pending expression.
func runTokens(calc *rpn.Calculator, args []string, debugDump bool) error {
	var expression string
	var hadExpression bool

	for _, arg := range args {
		switch arg {
		case "execute":
			if !hadExpression {
				return fmt.Errorf("rpncalc: %q given with no preceding expression", arg)
			}
			if err := report(calc.Execute(expression)); err != nil {
				return err
			}
		case "compile":
			if !hadExpression {
				return fmt.Errorf("rpncalc: %q given with no preceding expression", arg)
			}
			if err := report(calc.Compile(expression)); err != nil {
				return err
			}
		case "run":
			if err := report(calc.Run()); err != nil {
				return err
			}
		case "clear":
			if err := report(calc.Clear()); err != nil {
				return err
			}
		default:
			expression = arg
			hadExpression = true
		}

		if debugDump {
			dumpState(calc)
		}
	}
	return nil
}

// report prints the calculator's error, if any, in red on stderr and
// returns it unchanged so the caller can decide whether to keep going.
// A successful result is not printed.
func report(err error) error {
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func dumpState(calc *rpn.Calculator) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"slot", "kind", "value"})

	for i, v := range calc.Stack() {
		table.Append([]string{strconv.Itoa(i), "stack", strconv.FormatInt(v, 10)})
	}
	regs := calc.Registers()
	for i, v := range regs {
		table.Append([]string{strconv.Itoa(i), "register", strconv.FormatInt(v, 10)})
	}
	table.Render()
}
