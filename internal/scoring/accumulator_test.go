package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyExclusiveReplace(t *testing.T) {
	acc := Default()
	st := NewState()

	st, ok := acc.Apply(st, FieldTrack, "", "general")
	require.True(t, ok)
	assert.Equal(t, 10.0, st.AxisA)
	assert.Equal(t, 5.0, st.AxisB)

	// Replacing must be atomic: the old weight leaves as the new arrives.
	st, ok = acc.Apply(st, FieldTrack, "general", "professional")
	require.True(t, ok)
	assert.Equal(t, 3.0, st.AxisA)
	assert.Equal(t, 10.0, st.AxisB)
	assert.Equal(t, []string{"professional"}, st.Selected[FieldTrack])
}

func TestRetractionRestoresExactTotals(t *testing.T) {
	acc := Default()
	st := NewState()

	st, _ = acc.Apply(st, FieldTrack, "", "general")
	st, _ = acc.Apply(st, FieldSpecialty, "", "Maths")
	before := st

	// Select and then deselect the 16+ grade band.
	st, ok := acc.Apply(st, FieldGradeBand, "", "16+")
	require.True(t, ok)
	st, ok = acc.Apply(st, FieldGradeBand, "16+", "")
	require.True(t, ok)

	assert.Equal(t, before.AxisA, st.AxisA)
	assert.Equal(t, before.AxisB, st.AxisB)
	assert.Empty(t, st.Selected[FieldGradeBand])
}

func TestBoundedSetRejectsBeyondCapacity(t *testing.T) {
	acc := Default()
	st := NewState()

	for _, sp := range []string{"Maths", "NSI", "SES"} {
		var ok bool
		st, ok = acc.Apply(st, FieldSpecialty, "", sp)
		require.True(t, ok)
	}

	before := st
	st, ok := acc.Apply(st, FieldSpecialty, "", "Arts")
	assert.False(t, ok)
	assert.Equal(t, before.AxisA, st.AxisA)
	assert.Equal(t, before.AxisB, st.AxisB)
	assert.Len(t, st.Selected[FieldSpecialty], 3)
	assert.Len(t, st.History, len(before.History))
}

func TestBoundedSetToggle(t *testing.T) {
	acc := Default()
	st := NewState()

	st, _ = acc.Apply(st, FieldSpecialty, "", "Maths")
	require.Equal(t, 10.0, st.AxisA)

	// Re-selecting a held value deselects it.
	st, ok := acc.Apply(st, FieldSpecialty, "", "Maths")
	require.True(t, ok)
	assert.Equal(t, 0.0, st.AxisA)
	assert.Equal(t, 0.0, st.AxisB)
	assert.Empty(t, st.Selected[FieldSpecialty])
}

func TestBoundedSetReplaceAtCapacity(t *testing.T) {
	acc := Default()
	st := NewState()

	for _, sp := range []string{"Maths", "NSI", "SES"} {
		st, _ = acc.Apply(st, FieldSpecialty, "", sp)
	}

	// Swapping one value for another keeps the count at the bound.
	st, ok := acc.Apply(st, FieldSpecialty, "SES", "Arts")
	require.True(t, ok)
	assert.Len(t, st.Selected[FieldSpecialty], 3)
	assert.Contains(t, st.Selected[FieldSpecialty], "Arts")
	assert.NotContains(t, st.Selected[FieldSpecialty], "SES")
}

func TestUnknownValuesAreZeroWeight(t *testing.T) {
	acc := Default()
	st := NewState()

	st, ok := acc.Apply(st, FieldTrack, "", "made-up-track")
	require.True(t, ok)
	assert.Equal(t, 0.0, st.AxisA)
	assert.Equal(t, 0.0, st.AxisB)

	st, ok = acc.Apply(st, "made-up-field", "", "whatever")
	require.True(t, ok)
	assert.Equal(t, 0.0, st.AxisA)
	assert.Equal(t, 0.0, st.AxisB)
}

func TestHistoryRecordsDeltas(t *testing.T) {
	acc := Default()
	st := NewState()

	st, _ = acc.Apply(st, FieldGradeBand, "", "16+")
	st, _ = acc.Apply(st, FieldGradeBand, "16+", "")

	require.Len(t, st.History, 2)
	assert.Equal(t, 12.0, st.History[0].AxisADelta)
	assert.Equal(t, "gradeBand: +16+", st.History[0].Reason)
	assert.Equal(t, -12.0, st.History[1].AxisADelta)
	assert.Equal(t, "gradeBand: -16+", st.History[1].Reason)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	acc := Default()
	st := NewState()
	st, _ = acc.Apply(st, FieldTrack, "", "general")

	snapshot := st.AxisA
	_, _ = acc.Apply(st, FieldTrack, "general", "technological")
	assert.Equal(t, snapshot, st.AxisA)
	assert.Equal(t, []string{"general"}, st.Selected[FieldTrack])
}
