/*
 * config.go, part of geomcalc.
 *
 * Copyright 2026 The geomcalc authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const configEnv = "GEOMCALC_CONFIG"

//config holds the settings that can be given in a YAML file. Unset
//fields leave the command line defaults alone.
//
//	precision: 4
//	color: false
//	verbose: true
type config struct {
	Precision *int  `yaml:"precision"`
	Color     *bool `yaml:"color"`
	Verbose   *bool `yaml:"verbose"`
}

//loadConfig reads the configuration in path, or in the file named by
//$GEOMCALC_CONFIG if path is empty. No file means an empty configuration.
func loadConfig(path string) (*config, error) {
	if path == "" {
		path = os.Getenv(configEnv)
	}
	cfg := new(config)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Precision != nil && *cfg.Precision < 0 {
		return nil, fmt.Errorf("config %s: precision must be zero or positive, got %d", path, *cfg.Precision)
	}
	return cfg, nil
}
