package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioConfig describes a grid planning scenario loaded from YAML, per
// SPEC_FULL.md §6. Grid rows are read top-to-bottom; '#' marks a blocked
// cell, '.' an open one.
type scenarioConfig struct {
	Grid []string `yaml:"grid"`
	Start struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"start"`
	Goal struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"goal"`
	Epsilon struct {
		Initial float64 `yaml:"initial"`
		Final   float64 `yaml:"final"`
		Delta   float64 `yaml:"delta"`
	} `yaml:"epsilon"`
	Conn8              bool `yaml:"conn8"`
	AllowPartial       bool `yaml:"allow_partial"`
	MaxExpansions      int  `yaml:"max_expansions"`
	MaxExpansionsInit  int  `yaml:"max_expansions_init"`
}

func loadScenario(path string) (*scenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg scenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// blockedGrid converts the YAML grid's '#'/'.' rows into a [][]bool.
func (c *scenarioConfig) blockedGrid() [][]bool {
	rows := make([][]bool, len(c.Grid))
	for y, row := range c.Grid {
		cells := make([]bool, len(row))
		for x, ch := range row {
			cells[x] = ch == '#'
		}
		rows[y] = cells
	}
	return rows
}
