package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManifest(t *testing.T) {
	fields := []HeaderField{
		{Key: "name", Value: "jira-master"},
		{Key: "description", Value: "Jira ticket management specialist"},
		{Key: "model", Value: "opus"},
	}

	m, ok := NewManifest(fields, "agents/jira-master.md")
	require.True(t, ok)
	assert.Equal(t, "jira-master", m.Name)
	assert.Equal(t, "Jira ticket management specialist", m.Description)
	assert.Equal(t, "opus", m.Model)
	assert.Equal(t, "agents/jira-master.md", m.Path)
}

func TestNewManifest_Defaults(t *testing.T) {
	m, ok := NewManifest([]HeaderField{{Key: "name", Value: "minimal"}}, "agents/minimal.md")
	require.True(t, ok)
	assert.Equal(t, "", m.Description)
	assert.Equal(t, DefaultModel, m.Model)
}

func TestNewManifest_MissingName(t *testing.T) {
	_, ok := NewManifest([]HeaderField{{Key: "description", Value: "anonymous"}}, "agents/anon.md")
	assert.False(t, ok)

	_, ok = NewManifest([]HeaderField{{Key: "name", Value: ""}}, "agents/blank.md")
	assert.False(t, ok)

	_, ok = NewManifest(nil, "agents/empty.md")
	assert.False(t, ok)
}

func TestNewManifest_DuplicateKeysLastWins(t *testing.T) {
	fields := []HeaderField{
		{Key: "name", Value: "first"},
		{Key: "model", Value: "haiku"},
		{Key: "name", Value: "second"},
	}

	m, ok := NewManifest(fields, "agents/dup.md")
	require.True(t, ok)
	assert.Equal(t, "second", m.Name)
	assert.Equal(t, "haiku", m.Model)
}

func TestBuildCatalog(t *testing.T) {
	descriptors := []Descriptor{
		{Path: "agents/a.md", Text: "---\nname: alpha\n---\nbody"},
		{Path: "agents/b.md", Text: "no header at all"},
		{Path: "agents/c.md", Text: "---\ndescription: nameless\n---\nbody"},
		{Path: "agents/d.md", Text: "---\nname: alpha\nmodel: opus\n---\nbody"},
	}

	catalog := BuildCatalog(descriptors)
	require.Len(t, catalog, 2)

	// Scan order preserved, duplicate names both kept.
	assert.Equal(t, "alpha", catalog[0].Name)
	assert.Equal(t, "agents/a.md", catalog[0].Path)
	assert.Equal(t, DefaultModel, catalog[0].Model)
	assert.Equal(t, "alpha", catalog[1].Name)
	assert.Equal(t, "opus", catalog[1].Model)
}

func TestBuildCatalog_Empty(t *testing.T) {
	assert.Empty(t, BuildCatalog(nil))
	assert.Empty(t, BuildCatalog([]Descriptor{{Path: "agents/x.md", Text: "plain prose"}}))
}
