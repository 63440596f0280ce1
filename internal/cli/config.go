// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration.
type Config struct {
	// LibraryPath is where the vendor PL2 reader shared library lives. The
	// library ships with Plexon's C++ PL2 Offline Files SDK.
	LibraryPath string `yaml:"library_path,omitempty"`
}

// DefaultConfig returns the default configuration, with a platform-typical
// library name resolved from the working directory.
func DefaultConfig() *Config {
	name := "libPL2FileReader.so"
	switch runtime.GOOS {
	case "windows":
		name = "PL2FileReader.dll"
	case "darwin":
		name = "libPL2FileReader.dylib"
	}
	return &Config{LibraryPath: name}
}

// configPath returns the path to the config file.
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pl2", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pl2", "config.yaml")
}

// LoadConfig loads config from file, falling back to defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}
