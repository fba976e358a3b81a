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


// Package config holds the user-facing settings of the launcher search
// core. Settings are read from a YAML file; a missing file yields the
// defaults. Malformed individual values are recovered at the point of
// use, never surfaced to the user as a failure.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when the settings file is absent or silent.
const (
	DefaultDBPath        = "./launcher_db"
	DefaultPoolSize      = 2
	DefaultIconCacheSize = 256
)

// Settings is the persisted user configuration.
//
// NumberOfDisplayElements is kept as the raw string the settings UI
// stored; consumers parse it leniently and substitute a default when it
// is malformed.
type Settings struct {
	DBPath                  string `yaml:"db-path"`
	NumberOfDisplayElements string `yaml:"number-of-display-elements"`
	IconCacheEnabled        bool   `yaml:"icon-cache-enabled"`
	IconCacheSize           int    `yaml:"icon-cache-size"`
	PoolSize                int    `yaml:"pool-size"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		DBPath:           DefaultDBPath,
		IconCacheEnabled: true,
		IconCacheSize:    DefaultIconCacheSize,
		PoolSize:         DefaultPoolSize,
	}
}

// Load reads settings from a YAML file. A missing file is not an error:
// the defaults are returned. Unset fields keep their default values.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if s.PoolSize < 1 {
		s.PoolSize = DefaultPoolSize
	}
	if s.IconCacheSize < 1 {
		s.IconCacheSize = DefaultIconCacheSize
	}
	return s, nil
}
