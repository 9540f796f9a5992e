package ftracker

import (
	"encoding/json"
	"io"
)

// Package is a single raw reading from a tracker
type Package struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type Config struct {
	Packages []*Package `json:"packages"`
}

// ReadConfig decodes a json config from the reader
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
