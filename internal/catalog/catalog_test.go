package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-tracker/internal/catalog"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()

	require.NoError(t, err)
	require.Len(t, c.Types, 6)
	assert.Equal(t, "1", c.Types[0].ID)
	assert.Equal(t, "Push", c.Types[0].Name)
	assert.Len(t, c.Types[0].Exercises, 3)
	assert.Equal(t, "1-1", c.Types[0].Exercises[0].ID)
	assert.Equal(t, 4, c.Types[0].Exercises[0].Sets)

	for _, id := range []string{"1", "2", "3", "4"} {
		assert.True(t, c.IsProtected(id), "type %s should be protected", id)
	}
	assert.False(t, c.IsProtected("5"))
	assert.False(t, c.IsProtected("6"))
}

func TestParse_UnknownKey(t *testing.T) {
	doc := `
[[types]]
id = "a"
name = "Swim"
colour = "blue"
`
	_, err := catalog.Parse([]byte(doc))

	require.Error(t, err)
	assert.ErrorContains(t, err, "colour")
}

func TestParse_DuplicateID(t *testing.T) {
	doc := `
[[types]]
id = "a"
name = "Swim"

[[types]]
id = "a"
name = "Bike"
`
	_, err := catalog.Parse([]byte(doc))

	assert.ErrorContains(t, err, "duplicate id")
}

func TestParse_ReservedID(t *testing.T) {
	_, err := catalog.Parse([]byte("[[types]]\nid = \"custom\"\nname = \"X\"\n"))

	assert.ErrorContains(t, err, "reserved")
}

func TestParse_MissingName(t *testing.T) {
	_, err := catalog.Parse([]byte("[[types]]\nid = \"a\"\nname = \"  \"\n"))

	assert.ErrorContains(t, err, "name is required")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.toml")
	doc := `
[[types]]
id = "swim"
name = "Swim"
icon = "🏊"
protected = true

  [[types.exercises]]
  id = "laps"
  name = "Freestyle laps"
  sets = 10
  reps = "50m"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := catalog.Load(path)

	require.NoError(t, err)
	require.Len(t, c.Types, 1)
	assert.Equal(t, "laps", c.Types[0].Exercises[0].ID)
	assert.True(t, c.IsProtected("swim"))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := catalog.Load("")

	require.NoError(t, err)
	assert.Len(t, c.Types, 6)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}
