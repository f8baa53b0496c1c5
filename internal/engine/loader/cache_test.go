package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/engine/loader"
)

func TestDocumentCache_CopiesInAndOut(t *testing.T) {
	c := loader.NewDocumentCache()

	root := domain.NewMapping()
	root.Set("name", domain.NewScalar("web"))
	doc := domain.NewDocument("/srv/site.yml", root)

	c.Put("/srv/site.yml", doc, 42)
	root.Set("name", domain.NewScalar("mutated after put"))

	first, ok := c.Get("/srv/site.yml")
	require.True(t, ok)
	name, _ := first.Root.Get("name")
	assert.Equal(t, "web", name.Value)

	first.Root.Set("name", domain.NewScalar("mutated after get"))

	second, ok := c.Get("/srv/site.yml")
	require.True(t, ok)
	name, _ = second.Root.Get("name")
	assert.Equal(t, "web", name.Value)
	assert.NotSame(t, first.Root, second.Root)
}

func TestDocumentCache_Digest(t *testing.T) {
	c := loader.NewDocumentCache()

	_, ok := c.Digest("/missing")
	assert.False(t, ok)
	_, ok = c.Get("/missing")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	c.Put("/a", domain.NewDocument("/a", nil), 7)
	c.Put("/b", domain.NewDocument("/b", nil), 9)

	digest, ok := c.Digest("/a")
	require.True(t, ok)
	assert.Equal(t, uint64(7), digest)
	assert.Equal(t, 2, c.Len())
}
