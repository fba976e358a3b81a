// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/poiesic/quicklaunch"
	"github.com/poiesic/quicklaunch/config"
	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/fuzzy"
	"github.com/poiesic/quicklaunch/provider"
	"github.com/poiesic/quicklaunch/storage"
)

func main() {
	app := &cli.App{
		Name:  "quicklaunch",
		Usage: "Ranked search core for launcher-style result lists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "settings",
				Aliases: []string{"s"},
				Usage:   "Path to the settings YAML file",
				Value:   "quicklaunch.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a free-text search over the catalog",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the entry catalog YAML file",
						Required: true,
					},
				},
			},
			{
				Name:      "tag",
				Usage:     "List every catalog entry carrying a tag",
				ArgsUsage: "<tag>",
				Action:    tagCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the entry catalog YAML file",
						Required: true,
					},
				},
			},
			{
				Name:      "record",
				Usage:     "Record a launched selection for a query",
				ArgsUsage: "<query> <entry-id>",
				Action:    recordCommand,
			},
			{
				Name:      "history",
				Usage:     "Show the recorded selections for a query",
				ArgsUsage: "<query>",
				Action:    historyCommand,
			},
			{
				Name:  "favorites",
				Usage: "Manage pinned entries",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List pinned entries",
						Action: favoritesListCommand,
					},
					{
						Name:      "add",
						Usage:     "Pin an entry identity",
						ArgsUsage: "<entry-id>",
						Action:    favoritesAddCommand,
					},
					{
						Name:      "remove",
						Usage:     "Unpin an entry identity",
						ArgsUsage: "<entry-id>",
						Action:    favoritesRemoveCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// catalog is the on-disk entry inventory the CLI serves searches from,
// standing in for the platform loaders a launcher host would register.
type catalog struct {
	Apps []struct {
		Component string   `yaml:"component"`
		Name      string   `yaml:"name"`
		Exec      string   `yaml:"exec"`
		Tags      []string `yaml:"tags"`
	} `yaml:"apps"`
	Contacts []struct {
		Key   string `yaml:"key"`
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
	} `yaml:"contacts"`
	Settings []struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Command string `yaml:"command"`
	} `yaml:"settings"`
}

func loadCatalog(path string) (*provider.MemoryProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	p, err := provider.NewMemoryProvider("catalog", fuzzy.NewScorer())
	if err != nil {
		return nil, err
	}
	for _, a := range cat.Apps {
		e := core.NewAppEntry(a.Component, a.Name, a.Exec)
		e.SetTags(a.Tags...)
		if err := p.Add(e); err != nil {
			return nil, fmt.Errorf("catalog app %q: %w", a.Component, err)
		}
	}
	for _, c := range cat.Contacts {
		if err := p.Add(core.NewContactEntry(c.Key, c.Name, c.Phone)); err != nil {
			return nil, fmt.Errorf("catalog contact %q: %w", c.Key, err)
		}
	}
	for _, s := range cat.Settings {
		if err := p.Add(core.NewSettingEntry(s.Key, s.Name, s.Command)); err != nil {
			return nil, fmt.Errorf("catalog setting %q: %w", s.Key, err)
		}
	}
	return p, nil
}

// consoleConsumer keeps the most recent snapshot; the command prints it
// once the session has settled.
type consoleConsumer struct {
	mu      sync.Mutex
	entries []core.Entry
}

func (c *consoleConsumer) Live() bool { return true }

func (c *consoleConsumer) DisplayResults(session uint64, entries []core.Entry) {
	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
}

func (c *consoleConsumer) print() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		fmt.Println("no results")
		return
	}
	for i, e := range c.entries {
		fmt.Printf("%2d. %-30s %-40s %d\n", i+1, e.Name(), e.ID(), e.Relevance())
	}
}

func openLauncher(c *cli.Context) (*quicklaunch.Launcher, error) {
	settings, err := config.Load(c.String("settings"))
	if err != nil {
		return nil, err
	}
	return quicklaunch.NewLauncher(settings.DBPath, quicklaunch.WithSettings(settings))
}

func searchCommand(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("query is required")
	}

	p, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()
	l.DataHandler().Register(p)

	consumer := &consoleConsumer{}
	q, err := l.StartQuerySearch(context.Background(), consumer, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	<-q.Done()
	l.Dispatcher().Sync()

	consumer.print()
	return nil
}

func tagCommand(c *cli.Context) error {
	tag := c.Args().First()
	if tag == "" {
		return fmt.Errorf("tag is required")
	}

	p, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return err
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()
	l.DataHandler().Register(p)

	consumer := &consoleConsumer{}
	s, err := l.StartTagSearch(context.Background(), consumer, tag)
	if err != nil {
		return fmt.Errorf("tag search failed: %w", err)
	}
	<-s.Done()
	l.Dispatcher().Sync()

	consumer.print()
	return nil
}

func recordCommand(c *cli.Context) error {
	query, entryID := c.Args().Get(0), c.Args().Get(1)
	if query == "" || entryID == "" {
		return fmt.Errorf("query and entry-id are required")
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()

	if err := l.HistoryRepository().RecordLaunch(context.Background(), query, entryID); err != nil {
		return fmt.Errorf("recording selection failed: %w", err)
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("query is required")
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()

	records, err := l.HistoryRepository().PreviousResultsForQuery(context.Background(), query)
	if err != nil {
		return fmt.Errorf("loading history failed: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("no history")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%-40s %d\n", r.Record, r.Value)
	}
	return nil
}

func favoritesListCommand(c *cli.Context) error {
	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()

	favs, err := l.Favorites(context.Background())
	if err != nil {
		return fmt.Errorf("loading favorites failed: %w", err)
	}
	if len(favs) == 0 {
		fmt.Println("no favorites")
		return nil
	}
	for _, f := range favs {
		fmt.Printf("%-40s %s\n", f.Record, f.AddedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func favoritesAddCommand(c *cli.Context) error {
	entryID := c.Args().First()
	if entryID == "" {
		return fmt.Errorf("entry-id is required")
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()

	if err := l.FavoriteRepository().AddFavorite(context.Background(), entryID); err != nil {
		return fmt.Errorf("pinning failed: %w", err)
	}
	return nil
}

func favoritesRemoveCommand(c *cli.Context) error {
	entryID := c.Args().First()
	if entryID == "" {
		return fmt.Errorf("entry-id is required")
	}

	l, err := openLauncher(c)
	if err != nil {
		return fmt.Errorf("failed to open launcher: %w", err)
	}
	defer l.Close()

	if err := l.FavoriteRepository().RemoveFavorite(context.Background(), entryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s is not pinned", entryID)
		}
		return fmt.Errorf("unpinning failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
