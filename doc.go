// Package rbparams provides the named parameter set used by reduced-basis
// model order reduction.
//
// A Parameters value holds real scalars addressed by name, split into two
// independent partitions:
//
//   - training parameters, which drive reduced-basis training and greedy
//     sampling;
//   - extra parameters, which travel with the set (metadata, auxiliary
//     scalars) but are never consulted by training.
//
// # Quick Start
//
//	p := rbparams.FromMap(map[string]float64{"mu_0": 0.1, "mu_1": 2.0})
//	p.SetExtraValue("time_step", 1e-3)
//
//	v, err := p.Value("mu_0")      // 0.1, nil
//	d := p.ValueOr("mu_2", -1.0)   // -1.0
//	p.Erase("mu_0")
//
// Lookups without a default return a *NotFoundError that matches ErrNotFound:
//
//	if _, err := p.Value("mu_9"); errors.Is(err, rbparams.ErrNotFound) {
//	    // ...
//	}
//
// # Iteration
//
// Both partitions iterate in ascending name order:
//
//	for name, v := range p.All() {
//	    fmt.Println(name, v)
//	}
//	for name, v := range p.Extra() {
//	    fmt.Println(name, v)
//	}
//
// # Equality
//
// Equal compares training parameters only. Two sets that differ only in their
// extra parameters are equal.
//
// # Text Dump
//
// Format renders one "name=value" line per training parameter, values in
// scientific notation:
//
//	p.Format(3) // "mu_1=2.000e+00\n"
//
// Print writes the same text to standard error, or through a structured
// Logger with WithLogger.
//
// # Concurrency
//
// Parameters is not synchronized. Readers may share a set as long as nobody
// writes to it; writers must be serialized by the caller.
package rbparams
