package rbparams

import (
	"io"
	"os"
)

type printOptions struct {
	output    io.Writer
	precision int
	logger    *Logger
}

func defaultPrintOptions() printOptions {
	return printOptions{
		output:    os.Stderr,
		precision: DefaultPrecision,
	}
}

// PrintOption configures Print.
type PrintOption func(*printOptions)

// WithOutput sends Print output to w instead of standard error.
//
// If nil is passed, standard error is used.
func WithOutput(w io.Writer) PrintOption {
	return func(o *printOptions) {
		if w == nil {
			w = os.Stderr
		}
		o.output = w
	}
}

// WithPrecision sets the number of digits after the decimal point.
func WithPrecision(precision int) PrintOption {
	return func(o *printOptions) {
		o.precision = precision
	}
}

// WithLogger makes Print emit one structured record through l instead of
// writing text. Values are logged at full precision, so WithPrecision and
// WithOutput have no effect.
//
// If nil is passed, Print writes text as usual.
func WithLogger(l *Logger) PrintOption {
	return func(o *printOptions) {
		o.logger = l
	}
}
