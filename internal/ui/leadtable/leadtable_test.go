package leadtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/lead"
)

func sampleLeads() []lead.Lead {
	return []lead.Lead{
		{ID: 1, Name: "Ramesh", Phone: "9876543210", Stage: "General Enquiry", Priority: 1},
		{ID: 2, Name: "Suresh", Phone: "9812345678", Stage: "Visit Done", Priority: 3},
		{ID: 3, Name: "Mahesh", Phone: "9911223344", Stage: "Negotiation", Priority: 2},
	}
}

func TestSelected_EmptyTable(t *testing.T) {
	m := New(nil)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestMoveDownUp(t *testing.T) {
	m := New(nil).SetLeads(sampleLeads())

	m = m.MoveDown()
	l, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, l.ID)

	m = m.MoveUp()
	l, _ = m.Selected()
	assert.Equal(t, 1, l.ID)
}

func TestMove_ClampsAtEnds(t *testing.T) {
	m := New(nil).SetLeads(sampleLeads())

	m = m.MoveUp()
	l, _ := m.Selected()
	assert.Equal(t, 1, l.ID)

	for range 10 {
		m = m.MoveDown()
	}
	l, _ = m.Selected()
	assert.Equal(t, 3, l.ID)
}

func TestSetLeads_ClampsSelectionOnShrink(t *testing.T) {
	m := New(nil).SetLeads(sampleLeads())
	m = m.MoveDown()
	m = m.MoveDown()

	m = m.SetLeads(sampleLeads()[:1])
	l, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, l.ID)
}

func TestSelectByID(t *testing.T) {
	m := New(nil).SetLeads(sampleLeads())

	m = m.SelectByID(3)
	l, _ := m.Selected()
	assert.Equal(t, 3, l.ID)

	// Unknown id keeps the current selection.
	m = m.SelectByID(999)
	l, _ = m.Selected()
	assert.Equal(t, 3, l.ID)
}

func TestDefaultVisible_EveryKeyIsARealColumn(t *testing.T) {
	known := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		known[c.Key] = true
	}
	for key := range DefaultVisible() {
		assert.True(t, known[key], key)
	}
}

func TestView_ShowsOnlyVisibleColumns(t *testing.T) {
	m := New(map[string]bool{lead.FieldID: true, lead.FieldName: true}).
		SetLeads(sampleLeads()).
		SetSize(120, 20)

	out := m.View()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Ramesh")
	assert.NotContains(t, out, "Phone")
	assert.NotContains(t, out, "9876543210")
}

func TestView_SortIndicator(t *testing.T) {
	m := New(nil).
		SetLeads(sampleLeads()).
		SetSort(lead.FieldName, "asc").
		SetSize(120, 20)

	assert.Contains(t, m.View(), "▲")
}
