package dataset_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/ball"
	"github.com/katalvlaran/lfun/dataset"
	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/synthetic"
)

var ballEqual = cmp.Comparer(func(a, b ball.Ball) bool { return a.Equal(b) })

func samplesOf(L *lfunc.Context, s lfunc.Side) []ball.Ball {
	arr := L.Samples(s)
	out := make([]ball.Ball, 0, 2*arr.Bound()+1)
	for n := -arr.Bound(); n <= arr.Bound(); n++ {
		out = append(out, arr.At(n))
	}
	return out
}

// TestRecord_RoundTrip: context → record → YAML → record → context keeps
// every sample bit for bit.
func TestRecord_RoundTrip(t *testing.T) {
	k, _ := synthetic.Lookup("cos")
	L, _, err := synthetic.NewContext(k, lfunc.Params{Degree: 2, Mus: []float64{0, 1}, A: 4, H: 8, FFTNN: 64},
		lfunc.WithWorkingPrec(128), lfunc.WithDeclaredRank(lfunc.KnownRank(0)))
	require.NoError(t, err)

	rec, err := dataset.FromContext("cos-demo", L)
	require.NoError(t, err)
	assert.Empty(t, rec.Samples.Dual, "self-dual records omit the dual side")

	path := filepath.Join(t.TempDir(), "data", "cos.yaml")
	require.NoError(t, dataset.Save(path, rec))
	back, err := dataset.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(rec, back); diff != "" {
		t.Fatalf("record changed on disk (-want +got):\n%s", diff)
	}

	L2, err := back.Build(lfunc.WithWorkingPrec(128))
	require.NoError(t, err)
	assert.Equal(t, L.Mus(), L2.Mus())
	assert.True(t, L2.SelfDual())
	assert.Equal(t, lfunc.KnownRank(0), L2.DeclaredRank())
	for _, s := range lfunc.Sides {
		if diff := cmp.Diff(samplesOf(L, s), samplesOf(L2, s), ballEqual); diff != "" {
			t.Errorf("%s samples differ (-want +got):\n%s", s, diff)
		}
	}
}

const minimal = `
name: tiny
degree: 1
a: 1
h: 4
fft_nn: 16
epsilon: {re: 1, im: 0}
self_dual: true
samples:
  primal:
    - {n: 0, value: "1.5"}
    - {n: 1, value: "1.25 +/- 1e-10"}
    - {n: 2, value: "[-0.5, -0.25]"}
`

func TestDecode_HandWritten(t *testing.T) {
	rec, err := dataset.Decode(strings.NewReader(minimal))
	require.NoError(t, err)
	L, err := rec.Build()
	require.NoError(t, err)

	assert.Equal(t, 8, L.SampleBound())
	assert.Equal(t, 1.5, L.Samples(lfunc.Primal).At(0).Float64())
	assert.True(t, L.Samples(lfunc.Dual).At(2).IsNegative())
	assert.False(t, L.Samples(lfunc.Primal).Resolved(3))
}

func TestDecode_Errors(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader(minimal + "colour: blue\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = dataset.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrMissingField)

	rec, err := dataset.Decode(strings.NewReader(strings.Replace(minimal, `value: "1.5"`, `value: "one"`, 1)))
	require.NoError(t, err)
	_, err = rec.Build()
	assert.ErrorIs(t, err, dataset.ErrBadSample)

	rec, err = dataset.Decode(strings.NewReader(strings.Replace(minimal, "n: 2,", "n: 99,", 1)))
	require.NoError(t, err)
	_, err = rec.Build()
	assert.ErrorIs(t, err, lfunc.ErrSampleIndex)

	rec, err = dataset.Decode(strings.NewReader(strings.Replace(minimal, "self_dual: true", "self_dual: false", 1)))
	require.NoError(t, err)
	assert.ErrorIs(t, rec.Validate(), dataset.ErrMissingField)
}

func TestEncode_IsYAML(t *testing.T) {
	rec, err := dataset.Decode(strings.NewReader(minimal))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, rec))
	assert.Contains(t, buf.String(), "name: tiny")
	assert.Contains(t, buf.String(), "fft_nn: 16")
}
