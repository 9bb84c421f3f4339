package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_StartsOnSectionOne(t *testing.T) {
	n := New(nil)
	assert.Equal(t, 1, n.Current())
	assert.Equal(t, "Part-1", n.Indicator())
}

func TestGoTo_AnySectionReachableFromAnyOther(t *testing.T) {
	n := New(nil)

	for _, target := range []int{3, 1, 2, 2, 3} {
		require.NoError(t, n.GoTo(target))
		assert.Equal(t, target, n.Current())
	}
	assert.Equal(t, "Part-3", n.Indicator())
}

func TestGoTo_RejectsOutOfRange(t *testing.T) {
	n := New(nil)
	require.NoError(t, n.GoTo(2))

	assert.Error(t, n.GoTo(0))
	assert.Error(t, n.GoTo(4))
	assert.Equal(t, 2, n.Current(), "failed transitions leave the section unchanged")
}

func TestGoTo_FiresChangeCallback(t *testing.T) {
	var seen []int
	n := New(func(section int) { seen = append(seen, section) })

	require.NoError(t, n.GoTo(2))
	require.NoError(t, n.GoTo(1))
	assert.Error(t, n.GoTo(9))

	assert.Equal(t, []int{2, 1}, seen, "callback fires only on successful transitions")
}
