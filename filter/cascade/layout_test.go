package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-analog/filter/poles"
)

func TestPartitionStageCounts(t *testing.T) {
	for order := 1; order <= poles.MaxOrder; order++ {
		l, err := Partition(order)
		require.NoError(t, err)

		assert.Equal(t, (order+1)/2, l.StageCount(), "order %d", order)
		assert.Equal(t, order%2, l.FirstOrderStages(), "order %d", order)
		assert.Equal(t, order, l.Slots(), "order %d", order)
		for i := range l.Kinds {
			assert.Contains(t, []int{1, 2}, l.SlotsFor(i))
		}
	}
}

func TestPartitionMatchesCanonicalTables(t *testing.T) {
	for _, family := range []poles.Family{poles.Butterworth, poles.Bessel, poles.Chebyshev} {
		for order := 1; order <= poles.MaxOrder; order++ {
			ds, err := poles.For(family, order)
			require.NoError(t, err)
			l, err := Partition(order)
			require.NoError(t, err)
			assert.NoError(t, l.Match(ds), "%s order %d", family, order)
		}
	}
}

func TestPartitionInvalidOrder(t *testing.T) {
	_, err := Partition(0)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSplit(t *testing.T) {
	l, err := Partition(5)
	require.NoError(t, err)

	parts, err := l.Split([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {2, 3}, {4, 5}}, parts)
}

func TestSplitLengthErrors(t *testing.T) {
	l, err := Partition(4)
	require.NoError(t, err)

	_, err = l.Split([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInsufficientComponents)
	assert.ErrorIs(t, err, ErrComponentListMismatch)

	_, err = l.Split([]float64{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrComponentListMismatch)
	assert.NotErrorIs(t, err, ErrInsufficientComponents)
}

func TestMatchRejectsForeignLayout(t *testing.T) {
	l, err := Partition(3)
	require.NoError(t, err)

	ds, err := poles.For(poles.Butterworth, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, l.Match(ds), ErrPoleLayoutMismatch)

	swapped := []poles.Descriptor{{Omega0: 1, Q: 1}, {Omega0: 1}}
	assert.ErrorIs(t, l.Match(swapped), ErrPoleLayoutMismatch)
}
