package sallenkey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-analog/filter/poles"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

const fc = 1000.0

var (
	realPole = poles.Descriptor{Omega0: 1}
	bw2      = poles.Descriptor{Omega0: 1, Q: 1 / math.Sqrt2}
)

func TestFirstOrderFromResistance(t *testing.T) {
	for _, pass := range []PassType{LowPass, HighPass} {
		st, err := Solve(realPole, fc, pass, Known{R: 1000})
		require.NoError(t, err)
		assert.Equal(t, 1, st.Order)
		assert.Equal(t, Resistance, st.Given)
		assert.Equal(t, 1000.0, st.R)
		testutil.RequireRelNear(t, st.C, 1.5915494309189535e-07, 1e-12, pass.String()+" C")

		st, err = Solve(realPole, fc, pass, Known{R: 1500})
		require.NoError(t, err)
		testutil.RequireRelNear(t, st.C, 1.061032953945969e-07, 1e-12, pass.String()+" C")
	}
}

func TestFirstOrderFromCapacitance(t *testing.T) {
	st, err := Solve(realPole, fc, LowPass, Known{C: 2.2e-6})
	require.NoError(t, err)
	assert.Equal(t, Capacitance, st.Given)
	assert.Equal(t, 2.2e-6, st.C)
	testutil.RequireRelNear(t, st.R, 72.34315595086152, 1e-12, "R")
}

func TestFirstOrderReferenceFrequency(t *testing.T) {
	d := poles.Descriptor{Omega0: 1.3225}
	lp, err := Solve(d, fc, LowPass, Known{R: 1000})
	require.NoError(t, err)
	hp, err := Solve(d, fc, HighPass, Known{R: 1000})
	require.NoError(t, err)

	testutil.RequireRelNear(t, lp.R*lp.C, 1/(2*math.Pi*fc*1.3225), 1e-12, "lowpass RC")
	testutil.RequireRelNear(t, hp.R*hp.C, 1.3225/(2*math.Pi*fc), 1e-12, "highpass RC")
}

func TestFirstOrderErrors(t *testing.T) {
	_, err := Solve(realPole, fc, LowPass, Known{})
	assert.ErrorIs(t, err, ErrMissingComponent)

	_, err = Solve(realPole, fc, LowPass, Known{R: 1000, C: 1e-7})
	assert.ErrorIs(t, err, ErrAmbiguousComponent)

	_, err = Solve(realPole, fc, LowPass, Known{R: -10})
	assert.ErrorIs(t, err, ErrNonPositiveComponent)

	_, err = Solve(realPole, fc, LowPass, Known{C: math.NaN()})
	assert.ErrorIs(t, err, ErrNonPositiveComponent)
}

func TestSecondOrderLowPassFromResistances(t *testing.T) {
	st, err := Solve(bw2, fc, LowPass, Known{R1: 1000, R2: 5000})
	require.NoError(t, err)

	assert.Equal(t, 2, st.Order)
	assert.Equal(t, 1000.0, st.R1)
	assert.Equal(t, 5000.0, st.R2)
	testutil.RequireRelNear(t, st.C1, 3.7514e-8, 1e-4, "C1")
	testutil.RequireRelNear(t, st.C2, 1.3505e-7, 1e-4, "C2")
}

func TestSecondOrderHighPassFromResistances(t *testing.T) {
	st, err := Solve(bw2, fc, HighPass, Known{R1: 1000, R2: 5000})
	require.NoError(t, err)

	testutil.RequireRelNear(t, st.C1, 2.5366472992716085e-08, 1e-3, "C1")
	testutil.RequireRelNear(t, st.C2, 1.997147645859791e-07, 1e-3, "C2")
	assert.Greater(t, st.C2, st.C1, "+√ root belongs to C2")
}

func TestButterworthFourthOrderStages(t *testing.T) {
	ds, err := poles.For(poles.Butterworth, 4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		pass  PassType
		r     [2][2]float64
		wantC [2][2]float64
	}{
		{
			name:  "lowpass",
			pass:  LowPass,
			r:     [2][2]float64{{1000, 5000}, {12000, 6000}},
			wantC: [2][2]float64{{4.901297828649154e-08, 1.0336158624160052e-07}, {6.767137060219711e-09, 5.1987962160967617e-08}},
		},
		{
			name:  "highpass",
			pass:  HighPass,
			r:     [2][2]float64{{1000, 5000}, {1000, 12000}},
			wantC: [2][2]float64{{1.837507364548829e-08, 2.75702796073461e-07}, {2.0923392245338568e-08, 1.0088507483861624e-07}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, d := range ds {
				st, err := SolveGiven(d, fc, tt.pass, Resistance, tt.r[i][:])
				require.NoError(t, err)
				testutil.RequireSliceRelNear(t, st.Capacitances(), tt.wantC[i][:], 5e-4)
			}
		})
	}
}

func TestSecondOrderNegativeDiscriminant(t *testing.T) {
	ds, err := poles.For(poles.Butterworth, 3)
	require.NoError(t, err)

	_, err = SolveGiven(ds[1], fc, HighPass, Resistance, []float64{5000, 12000})
	require.ErrorIs(t, err, ErrNegativeDiscriminant)

	// Low-pass from capacitances needs C2 >= 4·Q²·C1.
	_, err = Solve(poles.Descriptor{Omega0: 1, Q: 2}, fc, LowPass, Known{C1: 10e-9, C2: 10e-9})
	require.ErrorIs(t, err, ErrNegativeDiscriminant)
}

func TestSecondOrderErrors(t *testing.T) {
	tests := []struct {
		name  string
		known Known
		want  error
	}{
		{"none", Known{}, ErrMissingComponent},
		{"half resistor pair", Known{R1: 1000}, ErrMissingComponent},
		{"half capacitor pair", Known{C2: 1e-9}, ErrMissingComponent},
		{"mixed", Known{R1: 1000, C1: 1e-9}, ErrAmbiguousComponent},
		{"both pairs", Known{R1: 1, R2: 2, C1: 1e-9, C2: 2e-9}, ErrAmbiguousComponent},
		{"negative", Known{R1: -1, R2: 2}, ErrNonPositiveComponent},
		{"infinite", Known{C1: math.Inf(1), C2: 1e-9}, ErrNonPositiveComponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(bw2, fc, LowPass, tt.known)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInputValidation(t *testing.T) {
	_, err := Solve(bw2, 0, LowPass, Known{R1: 1, R2: 2})
	assert.ErrorIs(t, err, ErrInvalidCutoff)

	_, err = Solve(bw2, math.Inf(1), LowPass, Known{R1: 1, R2: 2})
	assert.ErrorIs(t, err, ErrInvalidCutoff)

	_, err = Solve(poles.Descriptor{Omega0: 0, Q: 1}, fc, LowPass, Known{R1: 1, R2: 2})
	assert.ErrorIs(t, err, ErrInvalidPole)

	_, err = Solve(bw2, fc, PassType(7), Known{R1: 1, R2: 2})
	assert.ErrorIs(t, err, ErrInvalidPassType)

	_, err = SolveGiven(bw2, fc, LowPass, Resistance, []float64{1000})
	assert.ErrorIs(t, err, ErrMissingComponent)
}

func TestSuppliedValuesAreKept(t *testing.T) {
	st, err := Solve(bw2, fc, HighPass, Known{C1: 4.7e-9, C2: 10e-9})
	require.NoError(t, err)
	assert.Equal(t, 4.7e-9, st.C1)
	assert.Equal(t, 10e-9, st.C2)
	assert.Equal(t, Capacitance, st.Given)
	testutil.RequirePositive(t, st.Resistances())
}

// feasiblePair returns a (small, large) pair whose ratio clears the 4·Q²
// realizability bound of the quadratic branch.
func feasiblePair(base, q float64) []float64 {
	return []float64{base, base * math.Max(2, 8*q*q)}
}

func TestRoundTrip(t *testing.T) {
	for _, family := range []poles.Family{poles.Butterworth, poles.Bessel, poles.Chebyshev} {
		for order := 1; order <= poles.MaxOrder; order++ {
			ds, err := poles.For(family, order)
			require.NoError(t, err)

			for _, pass := range []PassType{LowPass, HighPass} {
				for i, d := range ds {
					rs := feasiblePair(1000, d.Q)[:d.Order()]
					fromR, err := SolveGiven(d, fc, pass, Resistance, rs)
					require.NoError(t, err, "%s %d %s stage %d", family, order, pass, i)

					back, err := SolveGiven(d, fc, pass, Capacitance, fromR.Capacitances())
					require.NoError(t, err, "%s %d %s stage %d", family, order, pass, i)
					testutil.RequireSliceRelNear(t, back.Resistances(), rs, 1e-9)

					cs := feasiblePair(1e-9, d.Q)[:d.Order()]
					fromC, err := SolveGiven(d, fc, pass, Capacitance, cs)
					require.NoError(t, err, "%s %d %s stage %d", family, order, pass, i)

					back, err = SolveGiven(d, fc, pass, Resistance, fromC.Resistances())
					require.NoError(t, err, "%s %d %s stage %d", family, order, pass, i)
					testutil.RequireSliceRelNear(t, back.Capacitances(), cs, 1e-9)
				}
			}
		}
	}
}

func TestRoundTripRandomResistances(t *testing.T) {
	d := poles.Descriptor{Omega0: 1.4474, Q: 0.691}
	vals := testutil.LogUniform(3, 64, 100, 1e6)
	for i := 0; i+1 < len(vals); i += 2 {
		r1, r2 := math.Min(vals[i], vals[i+1]), math.Max(vals[i], vals[i+1])
		st, err := Solve(d, fc, LowPass, Known{R1: r1, R2: r2})
		require.NoError(t, err)

		back, err := Solve(d, fc, LowPass, Known{C1: st.C1, C2: st.C2})
		require.NoError(t, err)
		testutil.RequireSliceRelNear(t, back.Resistances(), []float64{r1, r2}, 1e-7)
	}
}

func TestStageRoles(t *testing.T) {
	first, err := Solve(realPole, fc, LowPass, Known{R: 1000})
	require.NoError(t, err)
	assert.Equal(t, []Role{R, C}, first.Roles())
	assert.Len(t, first.Components(), 2)
	_, ok := first.Value(R1)
	assert.False(t, ok)

	second, err := Solve(bw2, fc, LowPass, Known{R1: 1000, R2: 5000})
	require.NoError(t, err)
	assert.Equal(t, []Role{R1, R2, C1, C2}, second.Roles())
	comps := second.Components()
	assert.Equal(t, 1000.0, comps[R1])
	assert.Contains(t, second.String(), "R2=5000")
}

func TestParsePassType(t *testing.T) {
	for in, want := range map[string]PassType{"lowpass": LowPass, "LP": LowPass, "high-pass": HighPass, "hp": HighPass} {
		got, err := ParsePassType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParsePassType("bandpass")
	assert.ErrorIs(t, err, ErrInvalidPassType)
}

func TestSplitPair(t *testing.T) {
	first, second, err := splitPair(6000, 5e6)
	require.NoError(t, err)
	assert.InDelta(t, 1000, first, 1e-9)
	assert.InDelta(t, 5000, second, 1e-9)

	_, _, err = splitPair(1, 1)
	assert.ErrorIs(t, err, ErrNegativeDiscriminant)
}
