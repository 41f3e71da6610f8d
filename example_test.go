package rbparams_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/rbparams"
)

// Example demonstrates building a parameter set and reading it back.
func Example() {
	p := rbparams.FromMap(map[string]float64{"mu_0": 0.1, "mu_1": 2.0})

	fmt.Println(p.NumParameters())
	fmt.Println(p.ValueOr("mu_2", -1.0))

	p.Erase("mu_0")
	fmt.Println(p.NumParameters(), p.HasValue("mu_0"))
	// Output:
	// 2
	// -1
	// 1 false
}

// Example_notFound shows how a missing parameter is reported.
func Example_notFound() {
	p := rbparams.New()

	_, err := p.Value("mu_9")
	fmt.Println(errors.Is(err, rbparams.ErrNotFound))
	fmt.Println(err)
	// Output:
	// true
	// training parameter "mu_9" not found
}

// Example_extraParameters shows that extra parameters live apart from training ones.
func Example_extraParameters() {
	p := rbparams.FromMap(map[string]float64{"mu_0": 0.1})
	p.SetExtraValue("time_step", 1e-3)

	q := p.Clone()
	q.SetExtraValue("time_step", 5e-3)

	fmt.Println(p.HasValue("time_step"), p.HasExtraValue("time_step"))
	fmt.Println(p.Equal(q))
	// Output:
	// false true
	// true
}

// ExampleParameters_All iterates the training parameters in name order.
func ExampleParameters_All() {
	p := rbparams.FromMap(map[string]float64{"kappa": 3, "alpha": 1, "mu": 2})

	for name, v := range p.All() {
		fmt.Println(name, v)
	}
	// Output:
	// alpha 1
	// kappa 3
	// mu 2
}

// ExampleParameters_Print writes the text dump to a chosen writer.
func ExampleParameters_Print() {
	p := rbparams.FromMap(map[string]float64{"mu_1": 2.0, "mu_0": 0.1})

	p.Print(rbparams.WithOutput(os.Stdout), rbparams.WithPrecision(3))
	// Output:
	// mu_0=1.000e-01
	// mu_1=2.000e+00
}
