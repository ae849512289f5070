package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPersistence is an in-memory Persistence for tests.
type memoryPersistence struct {
	data []byte
}

func (m *memoryPersistence) Load() ([]byte, error)  { return m.data, nil }
func (m *memoryPersistence) Save(data []byte) error { m.data = data; return nil }
func (m *memoryPersistence) Clear() error           { m.data = nil; return nil }

func TestStoreDefaultsWhenEmpty(t *testing.T) {
	s := NewStore(&memoryPersistence{})
	assert.Equal(t, DefaultContent(), s.Get())
}

func TestStoreSetRoundTrip(t *testing.T) {
	p := &memoryPersistence{}
	s := NewStore(p)

	doc := DefaultContent()
	doc.Hero.Title = "Hi, I'm somebody else"
	doc.About.Metrics.WAUGrowth.Value = "50%"
	require.NoError(t, s.Set(doc))
	assert.Equal(t, doc, s.Get())

	// Simulated reload: a fresh store reading the same persistence sees
	// the same document.
	reloaded := NewStore(p)
	assert.Equal(t, doc, reloaded.Get())
}

func TestStoreResetRestoresDefaults(t *testing.T) {
	p := &memoryPersistence{}
	s := NewStore(p)

	doc := DefaultContent()
	doc.Footer.Tagline = "edited"
	require.NoError(t, s.Set(doc))
	require.NoError(t, s.Reset())

	assert.Equal(t, DefaultContent(), s.Get())
	assert.Nil(t, p.data, "reset should clear the persisted override")

	reloaded := NewStore(p)
	assert.Equal(t, DefaultContent(), reloaded.Get())
}

func TestStoreMalformedOverrideFallsBack(t *testing.T) {
	p := &memoryPersistence{data: []byte("{not json")}
	s := NewStore(p)
	assert.Equal(t, DefaultContent(), s.Get())
}

func TestStoreInvalidOverrideFallsBack(t *testing.T) {
	doc := DefaultContent()
	doc.Hero.Title = ""
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	s := NewStore(&memoryPersistence{data: data})
	assert.Equal(t, DefaultContent(), s.Get())
}

func TestSetRejectsBrokenShape(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Content)
	}{
		{"empty hero title", func(c *Content) { c.Hero.Title = "" }},
		{"missing resume link", func(c *Content) { c.Links.Resume = "" }},
		{"empty skill category", func(c *Content) { c.Skills.Categories.DataAnalytics.Skills = nil }},
		{"untitled project", func(c *Content) { c.FeaturedWork.Projects.DataPipeline.Title = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(&memoryPersistence{})
			doc := DefaultContent()
			tc.mutate(&doc)
			assert.Error(t, s.Set(doc))
			assert.Equal(t, DefaultContent(), s.Get(), "rejected write must not be visible")
		})
	}
}
