// Command decimalish is a calculator for arbitrary-precision decimals.
// It evaluates expressions and runs single operations, rounding divisions
// and square roots with the rules given by flags, environment variables
// (DECIMALISH_PLACES, DECIMALISH_MODE, ...) or a JSON configuration file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/decimalish/decimal"
	"github.com/decimalish/decimal/internal/expr"
)

const version = "0.1.0"

// CLI defines the command-line interface for decimalish.
type CLI struct {
	Globals

	Eval    EvalCmd    `cmd:"" help:"Evaluate an arithmetic expression"`
	Round   RoundCmd   `cmd:"" help:"Round a value (0 places, half even by default)"`
	Div     DivCmd     `cmd:"" help:"Divide two values (34 digits, half even by default)"`
	DivRem  DivRemCmd  `cmd:"" name:"divrem" help:"Print the quotient and remainder of a division (integer quotient by default)"`
	Sqrt    SqrtCmd    `cmd:"" help:"Square root of a value (34 digits, half even by default)"`
	Fmt     FmtCmd     `cmd:"" help:"Format a value in fixed or exponential notation"`
	Cmp     CmpCmd     `cmd:"" help:"Compare two values, printing -1, 0 or 1"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// Globals are the flags shared by all commands.
type Globals struct {
	Config    kong.ConfigFlag `help:"Load flags from a JSON configuration file" type:"path"`
	Places    *int            `help:"Digits after the decimal point"`
	Precision *int            `help:"Significant digits"`
	Mode      decimal.Mode    `help:"Rounding mode, e.g. \"half up\" or half-even"`
	LogLevel  string          `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn"`
	LogFormat string          `name:"log-format" help:"Log format" enum:"logfmt,json" default:"logfmt"`
}

// rules returns the rounding rules selected by the flags.
func (g *Globals) rules() decimal.Rules {
	return decimal.Rules{Places: g.Places, Precision: g.Precision, Mode: g.Mode}
}

// runEnv is passed to the Run method of every command.
type runEnv struct {
	rules  decimal.Rules
	logger log.Logger
	out    io.Writer
}

func (env *runEnv) println(a ...any) error {
	_, err := fmt.Fprintln(env.out, a...)
	return err
}

// EvalCmd evaluates an expression.
type EvalCmd struct {
	Expr []string          `arg:"" help:"Expression; several arguments are joined with spaces (use -- before a leading minus)"`
	Var  map[string]string `short:"v" help:"Variable, as name=value"`
}

func (c *EvalCmd) Run(env *runEnv) error {
	ev := expr.Evaluator{Rules: env.rules, Vars: make(map[string]decimal.Decimal, len(c.Var))}
	for name, text := range c.Var {
		d, err := decimal.Parse(text)
		if err != nil {
			return fmt.Errorf("variable %v: %w", name, err)
		}
		ev.Vars[name] = d
	}
	src := strings.Join(c.Expr, " ")
	level.Debug(env.logger).Log("msg", "evaluating expression", "expr", src, "rules", env.rules)
	d, err := ev.Eval(src)
	if err != nil {
		return err
	}
	return env.println(d)
}

// RoundCmd rounds a value.
type RoundCmd struct {
	Value string `arg:"" help:"Value to round"`
}

func (c *RoundCmd) Run(env *runEnv) error {
	d, err := decimal.Parse(c.Value)
	if err != nil {
		return err
	}
	level.Debug(env.logger).Log("msg", "rounding", "value", d, "rules", env.rules)
	d, err = d.Round(env.rules)
	if err != nil {
		return err
	}
	return env.println(d)
}

// DivCmd divides two values.
type DivCmd struct {
	Dividend string `arg:"" help:"Dividend"`
	Divisor  string `arg:"" help:"Divisor"`
}

func (c *DivCmd) Run(env *runEnv) error {
	d, e, err := parsePair(c.Dividend, c.Divisor)
	if err != nil {
		return err
	}
	level.Debug(env.logger).Log("msg", "dividing", "dividend", d, "divisor", e, "rules", env.rules)
	q, err := d.Div(e, env.rules)
	if err != nil {
		return err
	}
	return env.println(q)
}

// DivRemCmd prints the quotient and the remainder of a division.
type DivRemCmd struct {
	Dividend string `arg:"" help:"Dividend"`
	Divisor  string `arg:"" help:"Divisor"`
}

func (c *DivRemCmd) Run(env *runEnv) error {
	d, e, err := parsePair(c.Dividend, c.Divisor)
	if err != nil {
		return err
	}
	level.Debug(env.logger).Log("msg", "dividing with remainder", "dividend", d, "divisor", e, "rules", env.rules)
	q, r, err := d.DivRem(e, env.rules)
	if err != nil {
		return err
	}
	return env.println(q, r)
}

// SqrtCmd computes a square root.
type SqrtCmd struct {
	Value string `arg:"" help:"Non-negative value"`
}

func (c *SqrtCmd) Run(env *runEnv) error {
	d, err := decimal.Parse(c.Value)
	if err != nil {
		return err
	}
	level.Debug(env.logger).Log("msg", "computing square root", "value", d, "rules", env.rules)
	d, err = d.Sqrt(env.rules)
	if err != nil {
		return err
	}
	return env.println(d)
}

// FmtCmd formats a value.
type FmtCmd struct {
	Value string `arg:"" help:"Value to format"`
	Exp   bool   `short:"e" help:"Use exponential notation"`
}

func (c *FmtCmd) Run(env *runEnv) error {
	d, err := decimal.Parse(c.Value)
	if err != nil {
		return err
	}
	var s string
	if c.Exp {
		s, err = d.ToExponential(env.rules)
	} else {
		s, err = d.ToFixed(env.rules)
	}
	if err != nil {
		return err
	}
	return env.println(s)
}

// CmpCmd compares two values.
type CmpCmd struct {
	A string `arg:"" help:"First value"`
	B string `arg:"" help:"Second value"`
}

func (c *CmpCmd) Run(env *runEnv) error {
	d, e, err := parsePair(c.A, c.B)
	if err != nil {
		return err
	}
	return env.println(d.Cmp(e))
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *runEnv) error {
	return env.println("decimalish", version)
}

func parsePair(a, b string) (decimal.Decimal, decimal.Decimal, error) {
	d, err := decimal.Parse(a)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	e, err := decimal.Parse(b)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return d, e, nil
}

func newLogger(lvl, format string, w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if format == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	}
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowWarn()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// run parses args and runs the selected command, writing results to
// stdout and logs and usage errors to stderr.
func run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("decimalish"),
		kong.Description("Arbitrary-precision decimal calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, "~/.config/decimalish/config.json"),
		kong.DefaultEnvars("DECIMALISH"),
		kong.Writers(stdout, stderr),
	}, options...)
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "decimalish: error: %v\n", err)
		return err
	}

	logger := newLogger(cli.LogLevel, cli.LogFormat, stderr)
	env := &runEnv{rules: cli.rules(), logger: logger, out: stdout}
	if err := ctx.Run(env); err != nil {
		level.Error(logger).Log("msg", "command failed", "cmd", ctx.Command(), "err", err)
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
