package normalize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-aujob-scraper/internal/models"
)

func TestCategorizeByTitle(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, models.CategoryTechnology, c.Categorize("Senior Software Engineer", "", nil))
	assert.Equal(t, models.CategoryHealthcare, c.Categorize("Registered Nurse", "", nil))
	assert.Equal(t, models.CategoryHospitality, c.Categorize("Head Chef", "", nil))
	assert.Equal(t, models.CategoryLegal, c.Categorize("Solicitor", "", nil))
}

func TestCategorizeTitleOutweighsDescription(t *testing.T) {
	c := NewClassifier()

	// one title keyword counts double and beats a single description keyword
	got := c.Categorize("Nurse", "working alongside the sales team", nil)
	assert.Equal(t, models.CategoryHealthcare, got)
}

func TestCategorizeUsesTags(t *testing.T) {
	c := NewClassifier()

	got := c.Categorize("Team Member", "", []string{"warehouse", "forklift"})
	assert.Equal(t, models.CategoryManufacturing, got)
}

func TestCategorizeNoMatchIsOther(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, models.CategoryOther, c.Categorize("", "", nil))
	assert.Equal(t, models.CategoryOther, c.Categorize("Astronaut", "space exploration", nil))
}

func TestCategorizeWholeWordsOnly(t *testing.T) {
	c := NewClassifier()

	// "lawn" must not match the "law" keyword
	assert.Equal(t, models.CategoryOther, c.Categorize("Lawn Mowing", "", nil))
}

func TestLoadClassifierFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	table := `
- category: technology
  keywords: [developer, engineer]
- category: finance
  keywords: [accountant]
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0644))

	c, err := LoadClassifier(path)
	require.NoError(t, err)

	assert.Equal(t, models.CategoryTechnology, c.Categorize("Backend Developer", "", nil))
	assert.Equal(t, models.CategoryFinance, c.Categorize("Senior Accountant", "", nil))
}

func TestLoadClassifierRejectsEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	_, err := LoadClassifier(path)
	assert.Error(t, err)
}

func TestLoadClassifierMissingFile(t *testing.T) {
	_, err := LoadClassifier(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
