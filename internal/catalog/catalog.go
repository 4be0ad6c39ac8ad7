// Package catalog loads the menu and safari listings shown by the UI.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ColumnDefault is the always-visible menu column.
const ColumnDefault = "default"

type Food struct {
	Name   string  `yaml:"name" json:"name"`
	Price  float64 `yaml:"price" json:"price"`
	Column string  `yaml:"column" json:"column"`
}

type Safari struct {
	Name  string  `yaml:"name" json:"name"`
	Price float64 `yaml:"price" json:"price"`
}

type Featured struct {
	Name string  `yaml:"name" json:"name"`
	Rate float64 `yaml:"rate" json:"rate"`
}

type Catalog struct {
	Food   []Food `yaml:"food" json:"food"`
	Safari struct {
		Featured Featured `yaml:"featured" json:"featured"`
		Listings []Safari `yaml:"listings" json:"listings"`
	} `yaml:"safari" json:"safari"`
	Slides []string `yaml:"slides" json:"slides"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a YAML catalog from path, or the default when path is empty.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for i := range c.Food {
		if strings.TrimSpace(c.Food[i].Column) == "" {
			c.Food[i].Column = ColumnDefault
		}
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := map[string]bool{}
	for _, f := range c.Food {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return errors.New("food item with empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate food item %q", name)
		}
		seen[name] = true
		if f.Price < 0 {
			return fmt.Errorf("food item %q has negative price", name)
		}
	}
	for _, s := range c.Safari.Listings {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("safari listing with empty name")
		}
		if s.Price < 0 {
			return fmt.Errorf("safari listing %q has negative price", s.Name)
		}
	}
	if c.Safari.Featured.Rate < 0 {
		return errors.New("featured safari has negative rate")
	}
	return nil
}

// Column returns the food items of one menu column in catalog order.
func (c *Catalog) Column(col string) []Food {
	var out []Food
	for _, f := range c.Food {
		if f.Column == col {
			out = append(out, f)
		}
	}
	return out
}

// FindFood looks up a food item by exact name.
func (c *Catalog) FindFood(name string) (Food, bool) {
	for _, f := range c.Food {
		if f.Name == name {
			return f, true
		}
	}
	return Food{}, false
}

func (c *Catalog) FindSafari(name string) (Safari, bool) {
	for _, s := range c.Safari.Listings {
		if s.Name == name {
			return s, true
		}
	}
	return Safari{}, false
}
