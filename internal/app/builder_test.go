package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/app"
	_ "go.trai.ch/dataloader/internal/wiring"
)

func TestComponents_Graph(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yml"), []byte("hosts: all\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("NO_COLOR", "1")

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	doc, err := components.App.Load(context.Background(), "site.yml")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"hosts": "all"}, doc.Interface())
}
