package rbparams

import (
	"context"
	"io"
	"strconv"
)

// DefaultPrecision is the number of digits after the decimal point used by
// String and Print.
const DefaultPrecision = 6

// Format renders the training parameters as text, one "name=value" line per
// parameter in ascending name order. Values use scientific notation with
// precision digits after the decimal point; a negative precision is treated
// as zero.
//
// The output is meant for humans and is not parsed back.
func (p *Parameters) Format(precision int) string {
	if precision < 0 {
		precision = 0
	}

	buf := make([]byte, 0, p.NumParameters()*(precision+16))
	for name, v := range p.All() {
		buf = append(buf, name...)
		buf = append(buf, '=')
		buf = strconv.AppendFloat(buf, v, 'e', precision, 64)
		buf = append(buf, '\n')
	}
	return string(buf)
}

// String implements fmt.Stringer using DefaultPrecision.
func (p *Parameters) String() string {
	return p.Format(DefaultPrecision)
}

// Print writes the formatted training parameters to standard error.
//
// Options redirect the output, change the precision, or route the set through
// a structured Logger instead. Write errors are ignored.
func (p *Parameters) Print(opts ...PrintOption) {
	o := defaultPrintOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if o.logger != nil {
		o.logger.LogParameters(context.Background(), "parameters", p)
		return
	}

	_, _ = io.WriteString(o.output, p.Format(o.precision))
}
