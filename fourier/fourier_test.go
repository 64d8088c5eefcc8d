package fourier

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/guilmont/web-fourier/internal/testutil"
)

func TestNewRejectsEmptyInput(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyInput", err)
	}

	_, err = NewFromReal([]float64{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewFromReal(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestNewRejectsNonFiniteInput(t *testing.T) {
	cases := []struct {
		name    string
		samples []complex128
	}{
		{"nan real", []complex128{1, complex(math.NaN(), 0), 3}},
		{"nan imag", []complex128{1, complex(0, math.NaN()), 3}},
		{"pos inf", []complex128{complex(math.Inf(1), 0)}},
		{"neg inf imag", []complex128{complex(0, math.Inf(-1))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.samples)
			if !errors.Is(err, ErrNonFinite) {
				t.Fatalf("New error = %v, want ErrNonFinite", err)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	samples := []complex128{1, 2, 3, 4}

	eng, err := New(samples)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	samples[0] = 99
	if eng.Original()[0] != 1 {
		t.Fatalf("engine aliases caller input: Original()[0] = %v", eng.Original()[0])
	}
}

func TestRoundTripReproducesOriginal(t *testing.T) {
	cases := []struct {
		name    string
		samples []complex128
	}{
		{"single sample", []complex128{2 + 3i}},
		{"two samples", []complex128{1, -1}},
		{"odd length real", toComplex(testutil.DeterministicSine(3, 1, 33))},
		{"even length real", toComplex(testutil.DeterministicNoise(7, 1, 64))},
		{"complex noise", testutil.DeterministicComplexNoise(11, 2, 50)},
		{"unit circle", testutil.UnitCircle(40)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng, err := New(tc.samples)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}

			got, err := eng.FilteredRange(0, eng.MaxFrequency())
			if err != nil {
				t.Fatalf("FilteredRange error: %v", err)
			}

			testutil.RequireComplexNearlyEqual(t, got, tc.samples, 1e-9)
		})
	}
}

func TestDCOnlyBandIsSignalMean(t *testing.T) {
	data := testutil.DeterministicNoise(3, 1, 41)

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	eng, err := NewFromReal(data)
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	dc, err := eng.FilteredRange(0, 0)
	if err != nil {
		t.Fatalf("FilteredRange error: %v", err)
	}

	for i, c := range dc {
		if cmplx.Abs(c-complex(mean, 0)) > 1e-9 {
			t.Fatalf("dc[%d] = %v, want constant %v", i, c, mean)
		}
	}
}

func TestSingleBandOfRealInputIsReal(t *testing.T) {
	data := testutil.DeterministicNoise(5, 1, 48)

	eng, err := NewFromReal(data)
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	// The k/N-k conjugate pair must cancel the imaginary component,
	// including at the Nyquist bin.
	for k := 1; k <= eng.MaxFrequency(); k++ {
		band, err := eng.FilteredRange(k, k)
		if err != nil {
			t.Fatalf("FilteredRange(%d, %d) error: %v", k, k, err)
		}

		testutil.RequireNearlyReal(t, band, 1e-9)
	}
}

func TestFilteredRangeRejectsInvalidRanges(t *testing.T) {
	eng, err := NewFromReal(testutil.DC(1, 16))
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	cases := []struct {
		name       string
		kMin, kMax int
	}{
		{"min above max", 5, 3},
		{"above max frequency", 0, eng.MaxFrequency() + 1},
		{"negative min", -1, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.FilteredRange(tc.kMin, tc.kMax)
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("FilteredRange(%d, %d) error = %v, want ErrInvalidRange", tc.kMin, tc.kMax, err)
			}
		})
	}
}

func TestComponentRejectsInvalidFrequency(t *testing.T) {
	eng, err := NewFromReal(testutil.DC(1, 8))
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	if _, err := eng.Component(eng.Size(), 0); !errors.Is(err, ErrFrequencyOutOfBounds) {
		t.Fatalf("Component(N, 0) error = %v, want ErrFrequencyOutOfBounds", err)
	}

	if _, err := eng.Component(-1, 0); !errors.Is(err, ErrFrequencyOutOfBounds) {
		t.Fatalf("Component(-1, 0) error = %v, want ErrFrequencyOutOfBounds", err)
	}
}

func TestComponentOfUnitCircle(t *testing.T) {
	n := 36
	eng, err := New(testutil.UnitCircle(n))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// A unit circle is a pure k=1 rotation, so its only coefficient is
	// X[1] = 1 and the component traces the circle itself.
	for step := 0; step < n; step++ {
		got, err := eng.Component(1, step)
		if err != nil {
			t.Fatalf("Component error: %v", err)
		}

		angle := 2 * math.Pi * float64(step) / float64(n)
		want := complex(math.Cos(angle), math.Sin(angle))
		if cmplx.Abs(got-want) > 1e-9 {
			t.Fatalf("Component(1, %d) = %v, want %v", step, got, want)
		}
	}
}

func TestComponentSumMatchesFilteredRange(t *testing.T) {
	samples := testutil.DeterministicComplexNoise(17, 1, 45)

	eng, err := New(samples)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	kMin, kMax := 0, eng.MaxFrequency()
	band, err := eng.FilteredRange(kMin, kMax)
	if err != nil {
		t.Fatalf("FilteredRange error: %v", err)
	}

	n := eng.Size()
	for point := 0; point < n; point += 7 {
		var sum complex128
		for k := kMin; k <= kMax; k++ {
			c, err := eng.Component(k, point)
			if err != nil {
				t.Fatalf("Component(%d, %d) error: %v", k, point, err)
			}
			sum += c

			if k == 0 || n-k == k {
				continue
			}

			mirror, err := eng.Component(n-k, point)
			if err != nil {
				t.Fatalf("Component(%d, %d) error: %v", n-k, point, err)
			}
			sum += mirror
		}

		if cmplx.Abs(sum-band[point]) > 1e-9 {
			t.Fatalf("chained components at %d = %v, want %v", point, sum, band[point])
		}
	}
}

func TestPowerSpectrumHermitianSymmetry(t *testing.T) {
	data := testutil.DeterministicNoise(23, 1, 31)

	eng, err := NewFromReal(data)
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	power := eng.PowerSpectrum()
	n := len(power)
	for k := 1; k < n; k++ {
		if math.Abs(power[k]-power[n-k]) > 1e-12 {
			t.Fatalf("power[%d] = %v, power[%d] = %v, want equal for real input", k, power[k], n-k, power[n-k])
		}
	}
}

func TestPowerSpectrumOfSine(t *testing.T) {
	n := 64
	data := testutil.DeterministicSine(4, 1, n)

	eng, err := NewFromReal(data)
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	power := eng.PowerSpectrum()
	testutil.RequireFinite(t, power)

	// sin splits into two coefficients of magnitude 1/2 at k=4 and k=N-4.
	if math.Abs(power[4]-0.25) > 1e-9 {
		t.Fatalf("power[4] = %v, want 0.25", power[4])
	}
	if math.Abs(power[n-4]-0.25) > 1e-9 {
		t.Fatalf("power[%d] = %v, want 0.25", n-4, power[n-4])
	}

	total := 0.0
	for k, p := range power {
		if k == 4 || k == n-4 {
			continue
		}
		total += p
	}
	if total > 1e-12 {
		t.Fatalf("off-bin spectral energy = %v, want 0", total)
	}
}

func TestPowerSpectrumCenteredRotation(t *testing.T) {
	cases := []struct {
		name   string
		length int
	}{
		{"even", 16},
		{"odd", 17},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng, err := New(testutil.DeterministicComplexNoise(29, 1, tc.length))
			if err != nil {
				t.Fatalf("New error: %v", err)
			}

			power := eng.PowerSpectrum()
			centered := eng.PowerSpectrumCentered()
			freqs := eng.FrequenciesCentered()

			n := tc.length
			zeroPos := n / 2
			if freqs[zeroPos] != 0 {
				t.Fatalf("FrequenciesCentered()[%d] = %v, want 0", zeroPos, freqs[zeroPos])
			}
			if centered[zeroPos] != power[0] {
				t.Fatalf("centered[%d] = %v, want DC power %v", zeroPos, centered[zeroPos], power[0])
			}

			for i, f := range freqs {
				k := int(f)
				if k < 0 {
					k += n
				}
				if centered[i] != power[k] {
					t.Fatalf("centered[%d] (freq %v) = %v, want power[%d] = %v", i, f, centered[i], k, power[k])
				}
			}
		})
	}
}

func TestStepSignalScenario(t *testing.T) {
	// 500-sample unit step, 200 nonzero samples: the DC term is the signal
	// mean 0.4 and its power is 0.16.
	data := testutil.StepSignal(500, 149, 350)

	ones := 0
	for _, v := range data {
		if v == 1 {
			ones++
		}
	}
	if ones != 200 {
		t.Fatalf("step signal has %d ones, want 200", ones)
	}

	eng, err := NewFromReal(data)
	if err != nil {
		t.Fatalf("NewFromReal error: %v", err)
	}

	if eng.Size() != 500 {
		t.Fatalf("Size() = %d, want 500", eng.Size())
	}
	if eng.MaxFrequency() != 250 {
		t.Fatalf("MaxFrequency() = %d, want 250", eng.MaxFrequency())
	}

	power := eng.PowerSpectrum()
	if math.Abs(power[0]-0.16) > 1e-9 {
		t.Fatalf("power[0] = %v, want 0.16", power[0])
	}

	dc, err := eng.FilteredRange(0, 0)
	if err != nil {
		t.Fatalf("FilteredRange error: %v", err)
	}
	for i, c := range dc {
		if cmplx.Abs(c-complex(0.4, 0)) > 1e-9 {
			t.Fatalf("dc[%d] = %v, want 0.4", i, c)
		}
	}
}

func TestPhasesLength(t *testing.T) {
	eng, err := New(testutil.UnitCircle(12))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	phases := eng.Phases()
	if len(phases) != 12 {
		t.Fatalf("Phases length = %d, want 12", len(phases))
	}
	testutil.RequireFinite(t, phases)
}

func toComplex(data []float64) []complex128 {
	out := make([]complex128, len(data))
	for i, v := range data {
		out[i] = complex(v, 0)
	}
	return out
}
