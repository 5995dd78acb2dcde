// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/lfunc"
)

// Record is one L-function on disk.
type Record struct {
	Name        string    `yaml:"name"`
	Degree      int       `yaml:"degree"`
	Mus         []float64 `yaml:"mus,omitempty,flow"`
	A           float64   `yaml:"a"`
	H           float64   `yaml:"h"`
	FFTNN       int       `yaml:"fft_nn"`
	SampleBound int       `yaml:"sample_bound,omitempty"`
	Epsilon     Complex   `yaml:"epsilon,flow"`
	Rank        *int      `yaml:"rank,omitempty"`
	SelfDual    bool      `yaml:"self_dual"`
	Samples     Samples   `yaml:"samples"`
}

// Complex is a YAML-friendly complex number.
type Complex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// Samples holds both sides' sample lists.
type Samples struct {
	Primal []Sample `yaml:"primal"`
	Dual   []Sample `yaml:"dual,omitempty"`
}

// Sample is F(n/A) as a ball literal.
type Sample struct {
	N     int    `yaml:"n"`
	Value string `yaml:"value"`
}

// Params returns the functional-equation data of r.
func (r *Record) Params() lfunc.Params {
	return lfunc.Params{Degree: r.Degree, Mus: r.Mus, A: r.A, H: r.H, FFTNN: r.FFTNN}
}

// Validate checks the fields Build needs.
func (r *Record) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("name: %w", ErrMissingField)
	case r.Degree == 0:
		return fmt.Errorf("%s: degree: %w", r.Name, ErrMissingField)
	case r.A == 0:
		return fmt.Errorf("%s: a: %w", r.Name, ErrMissingField)
	case r.H == 0:
		return fmt.Errorf("%s: h: %w", r.Name, ErrMissingField)
	case r.FFTNN == 0:
		return fmt.Errorf("%s: fft_nn: %w", r.Name, ErrMissingField)
	case len(r.Samples.Primal) == 0:
		return fmt.Errorf("%s: samples.primal: %w", r.Name, ErrMissingField)
	case !r.SelfDual && len(r.Samples.Dual) == 0:
		return fmt.Errorf("%s: samples.dual: %w", r.Name, ErrMissingField)
	}
	return nil
}

// Build creates a context from r. opts come first, so the record's own
// declared rank, ε, self-duality and sample bound take precedence.
//
// Errors:
//   - ErrMissingField        — see Validate.
//   - ErrBadSample           — an unparsable value.
//   - lfunc.ErrSampleIndex   — n outside the sample bound.
//   - lfunc.ErrBadParams     — invalid functional-equation data.
func (r *Record) Build(opts ...lfunc.Option) (*lfunc.Context, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	own := []lfunc.Option{
		lfunc.WithSelfDual(r.SelfDual),
		lfunc.WithEpsilon(complex(r.Epsilon.Re, r.Epsilon.Im)),
	}
	if r.Rank != nil {
		if *r.Rank < 0 {
			return nil, fmt.Errorf("%s: rank %d: %w", r.Name, *r.Rank, lfunc.ErrBadParams)
		}
		own = append(own, lfunc.WithDeclaredRank(lfunc.KnownRank(*r.Rank)))
	}
	if r.SampleBound > 0 {
		own = append(own, lfunc.WithSampleBound(r.SampleBound))
	}

	L, err := lfunc.New(r.Params(), append(append([]lfunc.Option{}, opts...), own...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}

	dual := r.Samples.Dual
	if r.SelfDual && len(dual) == 0 {
		dual = r.Samples.Primal
	}
	for _, side := range lfunc.Sides {
		list := r.Samples.Primal
		if side == lfunc.Dual {
			list = dual
		}
		if err := fill(L, side, list); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
	}
	return L, nil
}

func fill(L *lfunc.Context, side lfunc.Side, list []Sample) error {
	arr := L.Samples(side)
	for _, s := range list {
		v, err := ball.Parse(s.Value, L.WorkingPrec())
		if err != nil {
			return fmt.Errorf("%s n=%d: %w: %w", side, s.N, ErrBadSample, err)
		}
		if err := arr.Set(s.N, v); err != nil {
			return fmt.Errorf("%s: %w", side, err)
		}
	}
	return nil
}

// FromContext captures L as a record: every resolved sample of the primal
// side, and of the dual side unless L is self-dual.
func FromContext(name string, L *lfunc.Context) (*Record, error) {
	r := &Record{
		Name:        name,
		Degree:      L.Degree(),
		Mus:         L.Mus(),
		A:           L.A(),
		H:           L.H(),
		FFTNN:       L.FFTNN(),
		SampleBound: L.SampleBound(),
		Epsilon:     Complex{Re: real(L.Epsilon()), Im: imag(L.Epsilon())},
		SelfDual:    L.SelfDual(),
	}
	if v, ok := L.DeclaredRank().Value(); ok {
		r.Rank = &v
	}

	var err error
	if r.Samples.Primal, err = collect(L.Samples(lfunc.Primal)); err != nil {
		return nil, err
	}
	if !L.SelfDual() {
		if r.Samples.Dual, err = collect(L.Samples(lfunc.Dual)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func collect(arr *lfunc.SampleArray) ([]Sample, error) {
	var out []Sample
	for n := -arr.Bound(); n <= arr.Bound(); n++ {
		if !arr.Resolved(n) {
			continue
		}
		txt, err := arr.At(n).MarshalText()
		if err != nil {
			return nil, err
		}
		out = append(out, Sample{N: n, Value: string(txt)})
	}
	return out, nil
}

// Decode reads one record, rejecting unknown fields.
func Decode(rd io.Reader) (*Record, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var r Record
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrMissingField)
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	return &r, nil
}

// Encode writes r as YAML.
func Encode(w io.Writer, r *Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}
	return enc.Close()
}

// Load reads a record from path.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	r, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Save writes r to path, creating the directory if needed.
func Save(path string, r *Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}
