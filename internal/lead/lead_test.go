package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsDraft(t *testing.T) {
	assert.True(t, Lead{}.IsDraft())
	assert.False(t, Lead{ID: 42}.IsDraft())
}

func TestGetSet_TextFields(t *testing.T) {
	var l Lead
	require.NoError(t, l.Set(FieldName, "Ramesh Kumar"))
	require.NoError(t, l.Set(FieldPhone, "9876543210"))
	require.NoError(t, l.Set(FieldStage, "Visit Done"))

	assert.Equal(t, "Ramesh Kumar", l.Get(FieldName))
	assert.Equal(t, "9876543210", l.Get(FieldPhone))
	assert.Equal(t, "Visit Done", l.Get(FieldStage))
}

func TestGetSet_NumericFields(t *testing.T) {
	var l Lead
	require.NoError(t, l.Set(FieldBudget, "4500000"))
	require.NoError(t, l.Set(FieldPriority, "3"))
	require.NoError(t, l.Set(FieldIntent, "8"))

	assert.Equal(t, "4500000", l.Get(FieldBudget))
	assert.Equal(t, 3, l.Priority)
	assert.Equal(t, 8, l.Intent)
}

func TestGetSet_NumericZeroRendersEmpty(t *testing.T) {
	var l Lead
	assert.Empty(t, l.Get(FieldBudget))
	assert.Empty(t, l.Get(FieldPriority))
	assert.Empty(t, l.Get(FieldIntent))
}

func TestSet_EmptyClearsNumericField(t *testing.T) {
	l := Lead{Budget: 100000, Priority: 2}
	require.NoError(t, l.Set(FieldBudget, ""))
	require.NoError(t, l.Set(FieldPriority, ""))
	assert.Zero(t, l.Budget)
	assert.Zero(t, l.Priority)
}

func TestSet_InvalidNumberErrors(t *testing.T) {
	var l Lead
	assert.Error(t, l.Set(FieldBudget, "lots"))
	assert.Error(t, l.Set(FieldPriority, "high"))
}

func TestSet_UnknownFieldErrors(t *testing.T) {
	var l Lead
	assert.Error(t, l.Set("no_such_field", "x"))
}

func TestGetSet_RoundTripsEveryEditableField(t *testing.T) {
	fields := []string{
		FieldName, FieldPhone, FieldAlternativeContactDetails, FieldAddress,
		FieldAboutHim, FieldRequirementDescription, FieldNote, FieldPreferredArea,
		FieldPreferredType, FieldSize, FieldPurposes, FieldStage,
		FieldNextAction, FieldNextActionTime, FieldNextActionNote,
		FieldInterestedIn, FieldNotInterestedIn, FieldAssignedTo, FieldSource,
		FieldMedium, FieldPlacement, FieldListName, FieldTags, FieldSegment,
		FieldData1, FieldData2, FieldData3,
	}
	rapid.Check(t, func(t *rapid.T) {
		field := rapid.SampledFrom(fields).Draw(t, "field")
		value := rapid.StringMatching(`[a-zA-Z0-9 ,]{0,40}`).Draw(t, "value")

		var l Lead
		require.NoError(t, l.Set(field, value))
		assert.Equal(t, value, l.Get(field))
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Hot Lead", "NRI"}, SplitList("Hot Lead, NRI"))
	assert.Equal(t, []string{"One"}, SplitList("One"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "Hot Lead,NRI", JoinList([]string{"Hot Lead", "NRI"}))
	assert.Empty(t, JoinList(nil))
}

func TestSplitJoin_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z ]{1,10}`), 0, 5).Draw(t, "values")
		trimmed := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				trimmed = append(trimmed, v)
			}
		}
		got := SplitList(JoinList(trimmed))
		if len(trimmed) == 0 {
			assert.Nil(t, got)
			return
		}
		require.Len(t, got, len(trimmed))
	})
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	assert.True(t, d.IsDraft())
	assert.Equal(t, "General Enquiry", d.Stage)
	assert.Equal(t, 1, d.Priority)
	assert.Equal(t, "Take All Details", d.NextAction)
	assert.Equal(t, 5, d.Intent)
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "High", PriorityLabel(3))
	assert.Equal(t, "Medium", PriorityLabel(2))
	assert.Equal(t, "Low", PriorityLabel(1))
}
