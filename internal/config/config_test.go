package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/linkds/internal/ptr"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, zerolog.InfoLevel, *cfg.General.LogLevel)
	assert.False(t, *cfg.General.Silent)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Tree.Insert)
	assert.Equal(t, []int{9, 10}, cfg.Tree.Search)
	assert.Equal(t, 1, *cfg.List.Value)
	assert.Equal(t, 99, *cfg.List.Push)
	assert.Equal(t, 9, *cfg.List.Pop)
}

func TestConfig_UnmarshalTOML(t *testing.T) {
	tcs := []struct {
		name    string
		input   any
		wantErr bool
		assert  func(t *testing.T, c Config)
	}{
		{
			name: "valid config",
			input: map[string]any{
				"general": map[string]any{
					"log-level": "debug",
					"silent":    true,
				},
				"tree": map[string]any{
					"insert": []any{int64(5), int64(3), int64(8)},
					"search": []any{int64(3)},
				},
				"list": map[string]any{
					"value": int64(7),
					"push":  int64(10),
					"pop":   int64(4),
				},
			},
			assert: func(t *testing.T, c Config) {
				assert.Equal(t, zerolog.DebugLevel, *c.General.LogLevel)
				assert.True(t, *c.General.Silent)
				assert.Equal(t, []int{5, 3, 8}, c.Tree.Insert)
				assert.Equal(t, []int{3}, c.Tree.Search)
				assert.Equal(t, 7, *c.List.Value)
				assert.Equal(t, 10, *c.List.Push)
				assert.Equal(t, 4, *c.List.Pop)
			},
		},
		{
			name:  "missing sections stay nil",
			input: map[string]any{},
			assert: func(t *testing.T, c Config) {
				assert.Nil(t, c.General)
				assert.Nil(t, c.Tree)
				assert.Nil(t, c.List)
			},
		},
		{
			name:    "invalid type",
			input:   "invalid",
			wantErr: true,
		},
		{
			name: "invalid log level",
			input: map[string]any{
				"general": map[string]any{"log-level": "loud"},
			},
			wantErr: true,
		},
		{
			name: "negative push count",
			input: map[string]any{
				"list": map[string]any{"push": int64(-1)},
			},
			wantErr: true,
		},
		{
			name: "non-integer tree value",
			input: map[string]any{
				"tree": map[string]any{"insert": []any{int64(1), "two"}},
			},
			wantErr: true,
		},
		{
			name: "tree values not a list",
			input: map[string]any{
				"tree": map[string]any{"insert": int64(1)},
			},
			wantErr: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var c Config
			err := c.UnmarshalTOML(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tc.assert(t, c)
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	tcs := []struct {
		name      string
		overrides *Config
		assert    func(t *testing.T, merged *Config)
	}{
		{
			name:      "nil overrides keep defaults",
			overrides: nil,
			assert: func(t *testing.T, merged *Config) {
				assert.Equal(t, NewConfig(), merged)
			},
		},
		{
			name: "partial overrides",
			overrides: &Config{
				General: &GeneralOptions{Silent: ptr.FromValue(true)},
				Tree:    &TreeOptions{Search: []int{1}},
				List:    &ListOptions{Pop: ptr.FromValue(0)},
			},
			assert: func(t *testing.T, merged *Config) {
				assert.Equal(t, zerolog.InfoLevel, *merged.General.LogLevel)
				assert.True(t, *merged.General.Silent)
				assert.Equal(t, []int{1, 2, 3, 4}, merged.Tree.Insert)
				assert.Equal(t, []int{1}, merged.Tree.Search)
				assert.Equal(t, 99, *merged.List.Push)
				assert.Equal(t, 0, *merged.List.Pop)
			},
		},
		{
			name: "empty list overrides a default list",
			overrides: &Config{
				Tree: &TreeOptions{Insert: []int{}},
			},
			assert: func(t *testing.T, merged *Config) {
				assert.Empty(t, merged.Tree.Insert)
				assert.NotNil(t, merged.Tree.Insert)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			origin := NewConfig()
			merged := origin.Merge(tc.overrides)
			tc.assert(t, merged)

			// the origin is never modified
			assert.Equal(t, NewConfig(), origin)
		})
	}
}

func TestConfig_CloneIsDeep(t *testing.T) {
	origin := NewConfig()
	clone := origin.Clone()

	*clone.List.Push = 1
	clone.Tree.Insert[0] = 100

	assert.Equal(t, 99, *origin.List.Push)
	assert.Equal(t, 1, origin.Tree.Insert[0])
	assert.Nil(t, (*Config)(nil).Clone())
}

func TestMustParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, MustParseLogLevel("WARN"))
	assert.Equal(t, zerolog.TraceLevel, MustParseLogLevel("trace"))
	assert.Panics(t, func() { MustParseLogLevel("verbose") })
}

func TestValidateCount(t *testing.T) {
	tcs := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 99, false},
		{"max", maxCount, false},
		{"negative", -1, true},
		{"too large", maxCount + 1, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_ImplementUnmarshaler(t *testing.T) {
	tcs := []struct {
		name string
		opts toml.Unmarshaler
	}{
		{"config", &Config{}},
		{"general", &GeneralOptions{}},
		{"tree", &TreeOptions{}},
		{"list", &ListOptions{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.opts.UnmarshalTOML("not a table"))
			assert.NoError(t, tc.opts.UnmarshalTOML(map[string]any{}))
		})
	}
}

func TestFindTableFrom(t *testing.T) {
	var err error
	m := map[string]any{
		"list": map[string]any{"pop": int64(2)},
		"bad":  map[string]any{"pop": "two"},
	}

	list := findTableFrom[ListOptions](m, "list", &err)
	require.NoError(t, err)
	assert.Equal(t, 2, *list.Pop)

	assert.Nil(t, findTableFrom[ListOptions](m, "missing", &err))
	require.NoError(t, err)

	assert.Nil(t, findTableFrom[ListOptions](m, "bad", &err))
	assert.ErrorContains(t, err, "failed to decode 'bad'")

	// the first error wins
	assert.Nil(t, findTableFrom[ListOptions](m, "list", &err))
}
