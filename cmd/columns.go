package cmd

import (
	"errors"
	"fmt"
	"os"

	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/domain/pipeline"

	"gopkg.in/yaml.v3"
)

type columnsFile struct {
	Columns []columnEntry `yaml:"columns"`
}

type columnEntry struct {
	Status     string `yaml:"status"`
	Label      string `yaml:"label"`
	Color      string `yaml:"color"`
	LightColor string `yaml:"light_color"`
}

// LoadColumns reads the board layout from a YAML file:
//
//	columns:
//	  - status: PENDING
//	    label: Pending
//	    color: yellow
//	    light_color: yellow-50
//
// An empty path yields pipeline.DefaultColumns.
func LoadColumns(path string) (pipeline.Columns, error) {
	if path == "" {
		return pipeline.DefaultColumns(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline columns: %w", err)
	}
	return ParseColumns(data)
}

// ParseColumns decodes and validates a YAML board layout.
func ParseColumns(data []byte) (pipeline.Columns, error) {
	var file columnsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline columns: %w", err)
	}
	if len(file.Columns) == 0 {
		return nil, errors.New("pipeline columns file defines no columns")
	}

	columns := make([]pipeline.Column, 0, len(file.Columns))
	for i, entry := range file.Columns {
		status, err := serviceorder.ParseStatus(entry.Status)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		column, err := pipeline.NewColumn(status, entry.Label, entry.Color, entry.LightColor)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		columns = append(columns, column)
	}
	return pipeline.NewColumns(columns...)
}
