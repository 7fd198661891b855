package hidden_test

import (
	"testing"

	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
	"github.com/katalvlaran/hmmgen/sampler"
	"github.com/stretchr/testify/require"
)

// countingSource counts draws taken from the wrapped source.
type countingSource struct {
	src   sampler.Source
	draws int
}

func (c *countingSource) Intn(n int) int {
	c.draws++
	return c.src.Intn(n)
}

var (
	alwaysSwitch = markov.MustTransitionMatrix([][]float64{{0, 1}, {1, 0}})
	neverSwitch  = markov.MustTransitionMatrix([][]float64{{1, 0}, {0, 1}})
	cpgHidden    = markov.MustTransitionMatrix([][]float64{{0.97, 0.03}, {0.005, 0.999}})
)

func runScheduler(t *testing.T, s *hidden.Scheduler, src sampler.Source, n int) []hidden.State {
	t.Helper()
	out := make([]hidden.State, n)
	for i := range out {
		st, err := s.Next(src)
		require.NoError(t, err)
		out[i] = st
	}
	return out
}

func TestNewScheduler_InvalidConfiguration(t *testing.T) {
	_, err := hidden.NewScheduler(cpgHidden, [2]int{-1, 0}, hidden.InRegion)
	require.ErrorIs(t, err, hidden.ErrInvalidConfiguration)

	_, err = hidden.NewScheduler(cpgHidden, [2]int{0, -5}, hidden.InRegion)
	require.ErrorIs(t, err, hidden.ErrInvalidConfiguration)

	_, err = hidden.NewScheduler(nil, [2]int{1, 1}, hidden.InRegion)
	require.ErrorIs(t, err, hidden.ErrInvalidConfiguration)

	three := markov.MustTransitionMatrix([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = hidden.NewScheduler(three, [2]int{1, 1}, hidden.InRegion)
	require.ErrorIs(t, err, hidden.ErrInvalidConfiguration)

	_, err = hidden.NewScheduler(cpgHidden, [2]int{1, 1}, hidden.State(7))
	require.ErrorIs(t, err, hidden.ErrInvalidConfiguration)
}

func TestScheduler_ClampHoldsExactlyMinDwell(t *testing.T) {
	s, err := hidden.NewScheduler(alwaysSwitch, [2]int{50, 3}, hidden.InRegion)
	require.NoError(t, err)

	states := runScheduler(t, s, sampler.NewRand(1), 212)
	runs := hidden.Runs(states)
	// 50 + 3 + 50 + 3 + 50 + 3 + 50 + 3 = 212
	require.Len(t, runs, 8)
	for i, r := range runs {
		if i%2 == 0 {
			require.Equal(t, hidden.InRegion, r.State)
			require.Equal(t, 50, r.Len)
		} else {
			require.Equal(t, hidden.OutOfRegion, r.State)
			require.Equal(t, 3, r.Len)
		}
	}
}

func TestScheduler_NoDrawWhileClamped(t *testing.T) {
	s, err := hidden.NewScheduler(neverSwitch, [2]int{50, 50}, hidden.InRegion)
	require.NoError(t, err)
	src := &countingSource{src: sampler.NewRand(4)}

	runScheduler(t, s, src, 50)
	require.Zero(t, src.draws)
	require.True(t, s.Dwell() == 50 && !s.Clamped())

	// past the clamp there is one draw per step, and a same-state draw
	// keeps growing the dwell instead of resetting it
	runScheduler(t, s, src, 25)
	require.Equal(t, 25, src.draws)
	require.Equal(t, 75, s.Dwell())
	require.Equal(t, hidden.InRegion, s.Current())
}

func TestScheduler_ZeroDwellSamplesEveryStep(t *testing.T) {
	s, err := hidden.NewScheduler(neverSwitch, [2]int{0, 0}, hidden.OutOfRegion)
	require.NoError(t, err)
	src := &countingSource{src: sampler.NewRand(4)}
	runScheduler(t, s, src, 40)
	require.Equal(t, 40, src.draws)
}

func TestScheduler_FirstStepsCarryStartStateRegardlessOfMatrix(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, err := hidden.NewScheduler(alwaysSwitch, [2]int{50, 0}, hidden.InRegion)
		require.NoError(t, err)
		states := runScheduler(t, s, sampler.NewRand(seed), 60)
		for i := 0; i < 50; i++ {
			require.Equalf(t, hidden.InRegion, states[i], "seed %d step %d", seed, i)
		}
	}
}

func TestScheduler_RunsRespectMinimumDwell(t *testing.T) {
	minDwell := [2]int{50, 500}
	for seed := int64(1); seed <= 5; seed++ {
		s, err := hidden.NewScheduler(cpgHidden, minDwell, hidden.OutOfRegion)
		require.NoError(t, err)
		runs := hidden.Runs(runScheduler(t, s, sampler.NewRand(seed), 100000))
		require.NotEmpty(t, runs)
		for i, r := range runs[:len(runs)-1] { // the final run may be truncated
			require.GreaterOrEqualf(t, r.Len, minDwell[r.State], "seed %d run %d", seed, i)
		}
	}
}

func TestScheduler_Deterministic(t *testing.T) {
	a, _ := hidden.NewScheduler(cpgHidden, [2]int{5, 20}, hidden.InRegion)
	b, _ := hidden.NewScheduler(cpgHidden, [2]int{5, 20}, hidden.InRegion)
	require.Equal(t,
		runScheduler(t, a, sampler.NewRand(77), 5000),
		runScheduler(t, b, sampler.NewRand(77), 5000))
}

func TestScheduler_SamplingErrorLeavesStateUnchanged(t *testing.T) {
	s, err := hidden.NewScheduler(alwaysSwitch, [2]int{0, 0}, hidden.InRegion)
	require.NoError(t, err)
	_, err = s.Next(nil)
	require.ErrorIs(t, err, sampler.ErrNilSource)
	require.Equal(t, hidden.InRegion, s.Current())
	require.Zero(t, s.Dwell())
}
