// Package testutil provides testing utilities for rbparams.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for parameter names, values and
// name -> value mappings, so properties can be checked over many
// random inputs while staying reproducible.
//
//	rng := testutil.NewRNG(seed)
//	names := rng.Names(16)                // distinct names
//	m := rng.ParameterMap(16, -1, 1)      // name -> value in [-1, 1)
package testutil
