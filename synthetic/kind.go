// SPDX-License-Identifier: MIT

package synthetic

import (
	"fmt"
	"math"
	"sort"
)

// Func is a real function of the ordinate t.
type Func func(t float64) float64

// Kind is a named closed-form stand-in for Λ.
type Kind struct {
	Name string
	// G is Λ on the critical line; it must be even so both sides agree.
	G Func
	// Lipschitz bounds |G'|; it turns input uncertainty into output radius.
	Lipschitz float64
	// Zeros returns the exact zeros of G in (0, limit], ascending.
	Zeros func(limit float64) []float64
}

var kinds = map[string]Kind{
	"cos": {
		Name:      "cos",
		G:         math.Cos,
		Lipschitz: 1,
		Zeros: func(limit float64) []float64 {
			var out []float64
			for k := 0; ; k++ {
				z := math.Pi/2 + float64(k)*math.Pi
				if z > limit {
					return out
				}
				out = append(out, z)
			}
		},
	},
	"stationary": {
		Name:      "stationary",
		G:         func(t float64) float64 { return math.Cos(t) - 0.99 },
		Lipschitz: 1,
		Zeros: func(limit float64) []float64 {
			a := math.Acos(0.99)
			out := []float64{}
			if a <= limit {
				out = append(out, a)
			}
			for k := 1; ; k++ {
				c := 2 * math.Pi * float64(k)
				if c-a > limit {
					return out
				}
				out = append(out, c-a)
				if c+a <= limit {
					out = append(out, c+a)
				}
			}
		},
	},
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%q (have %v): %w", name, Names(), ErrUnknownKind)
	}
	return k, nil
}

// Names lists the registered kinds in lexical order.
func Names() []string {
	out := make([]string, 0, len(kinds))
	for name := range kinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
