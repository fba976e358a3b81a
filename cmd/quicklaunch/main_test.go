package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestLoadCatalog(t *testing.T) {
	writeCatalog := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("loads every entry kind", func(t *testing.T) {
		path := writeCatalog(t, `
apps:
  - component: camera
    name: Camera
    exec: gnome-camera
    tags: [media]
contacts:
  - key: alice
    name: Alice
    phone: "555-0100"
settings:
  - key: wifi
    name: Wi-Fi
    command: nm-connection-editor
`)
		p, err := loadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading catalog")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeCatalog(t, "apps: [not a mapping")
		_, err := loadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing catalog")
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		path := writeCatalog(t, "")
		p, err := loadCatalog(path)
		require.NoError(t, err)
		assert.Zero(t, p.Len())
	})
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	run := func(level string) error {
		app := &cli.App{
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
		return app.Run([]string{"quicklaunch", "--log-level", level})
	}

	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			assert.NoError(t, run(level), level)
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		err := run("verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestSearchCommandValidation(t *testing.T) {
	t.Run("catalog flag is required", func(t *testing.T) {
		app := &cli.App{
			Commands: []*cli.Command{
				{
					Name:   "search",
					Action: searchCommand,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "catalog", Required: true},
					},
				},
			},
		}
		err := app.Run([]string{"quicklaunch", "search", "cam"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
	})
}
