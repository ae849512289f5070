package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentPersistenceRoundTrip(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	p := db.Content()

	data, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "fresh database has no override")

	require.NoError(t, p.Save([]byte(`{"hero":{"title":"x"}}`)))
	data, err = p.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"hero":{"title":"x"}}`, string(data))

	// Save replaces wholesale.
	require.NoError(t, p.Save([]byte(`{"hero":{"title":"y"}}`)))
	data, err = p.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"hero":{"title":"y"}}`, string(data))

	require.NoError(t, p.Clear())
	data, err = p.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDismissalsUnionOnly(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	d := db.Dismissals()

	ids, err := d.All()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, d.Add("connect-linkedin"))
	require.NoError(t, d.Add("download-resume"))
	// Re-dismissing is a no-op, not an error.
	require.NoError(t, d.Add("connect-linkedin"))

	ids, err = d.All()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"connect-linkedin", "download-resume"}, ids)

	require.NoError(t, d.Clear())
	ids, err = d.All()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestVisitorEventJournal(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	events := []*VisitorEvent{
		{SessionID: "s1", EventType: "section_enter", Section: "skills", OccurredAt: now},
		{SessionID: "s1", EventType: "scroll", Value: 45, OccurredAt: now.Add(time.Second)},
		{SessionID: "s2", EventType: "project_viewed", Section: "proj-1", OccurredAt: now.Add(2 * time.Second)},
	}
	for _, ev := range events {
		require.NoError(t, db.InsertVisitorEvent(ev))
	}

	recent, err := db.RecentVisitorEvents(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first.
	assert.Equal(t, "project_viewed", recent[0].EventType)
	assert.Equal(t, "proj-1", recent[0].Section)
	assert.Equal(t, "scroll", recent[1].EventType)
	assert.InDelta(t, 45.0, recent[1].Value, 0.001)
	assert.True(t, recent[1].OccurredAt.Equal(now.Add(time.Second)))
}
