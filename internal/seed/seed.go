// Package seed carries the catalog and testimonials a fresh store starts with.
package seed

import (
	_ "embed"
	"fmt"

	"gaming-storefront/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Defaults struct {
	Products     []model.Product     `yaml:"products"`
	Testimonials []model.Testimonial `yaml:"testimonials"`
}

func Load() (*Defaults, error) {
	return Parse(defaultsYAML)
}

func Parse(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &d, nil
}
