package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/ptr"
)

var _ merger[*Config] = (*Config)(nil)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Tree    *TreeOptions    `toml:"tree"`
	List    *ListOptions    `toml:"list"`
}

// NewConfig returns the built-in defaults: insert 1..4 into the tree,
// search for 9 and 10, push 99 ones onto the list and pop 9 of them.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.InfoLevel),
			Silent:   ptr.FromValue(false),
		},
		Tree: &TreeOptions{
			Insert: []int{1, 2, 3, 4},
			Search: []int{9, 10},
		},
		List: &ListOptions{
			Value: ptr.FromValue(1),
			Push:  ptr.FromValue(99),
			Pop:   ptr.FromValue(9),
		},
	}
}

func (c *Config) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type config")
	}

	c.General = findTableFrom[GeneralOptions](m, "general", &err)
	c.Tree = findTableFrom[TreeOptions](m, "tree", &err)
	c.List = findTableFrom[ListOptions](m, "list", &err)

	return err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Tree:    c.Tree.Clone(),
		List:    c.List.Clone(),
	}
}

func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Tree:    origin.Tree.Merge(overrides.Tree),
		List:    origin.List.Merge(overrides.List),
	}
}
