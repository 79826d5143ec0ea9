package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"github.com/xvzc/linkds/internal/ptr"
)

const configFilename = "linkds.toml"

// CreateCommand builds the linkds root command. Its action resolves the
// final configuration (defaults, then the TOML file, then explicitly given
// flags) and hands it to runFunc together with the path of the loaded file.
func CreateCommand(
	runFunc func(ctx context.Context, configPath string, cfg *Config) error,
	version string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "linkds",
		Description: "Exercise the arena-backed search tree and linked list",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "ignore all configuration files",
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "custom location of the config file to load; flags override its values",
				OnlyOnce: true,
				Sources:  cli.EnvVars("LINKDS_CONFIG"),
			},

			&cli.IntFlag{
				Name:      "list-pop",
				Usage:     "number of PopFront calls",
				Value:     9,
				OnlyOnce:  true,
				Validator: validateCount,
			},

			&cli.IntFlag{
				Name:      "list-push",
				Usage:     "number of PushBack calls",
				Value:     99,
				OnlyOnce:  true,
				Validator: validateCount,
			},

			&cli.IntFlag{
				Name:     "list-value",
				Usage:    "value pushed onto the list",
				Value:    1,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:      "log-level",
				Usage:     "set log level (trace, debug, info, warn, error)",
				Value:     "info",
				OnlyOnce:  true,
				Validator: validateLogLevel,
			},

			&cli.BoolFlag{
				Name:     "silent",
				Usage:    "do not show the banner at start up",
				OnlyOnce: true,
			},

			&cli.IntSliceFlag{
				Name:  "tree-insert",
				Usage: "values inserted into the tree, in order",
				Value: []int{1, 2, 3, 4},
			},

			&cli.IntSliceFlag{
				Name:  "tree-search",
				Usage: "values searched for in the tree",
				Value: []int{9, 10},
			},

			&cli.BoolFlag{
				Name:     "version",
				Aliases:  []string{"v"},
				Usage:    "print version",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Fprintf(cmd.Root().Writer, "linkds %s\n", version)
				return nil
			}

			var fileCfg *Config
			var configPath string
			if !cmd.Bool("clean") {
				p, err := findConfigFileToLoad(cmd.String("config"), defaultLookupPaths())
				if err != nil {
					return err
				}

				if p != "" {
					configPath = p
					fileCfg, err = parseTomlConfig(p)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
				}
			}

			finalCfg := NewConfig().Merge(fileCfg).Merge(parseConfigFromArgs(cmd))

			return runFunc(ctx, configPath, finalCfg)
		},
	}

	return cmd
}

func defaultLookupPaths() []string {
	paths := []string{filepath.Join(string(os.PathSeparator), "etc", configFilename)}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "linkds", configFilename))
	}

	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "linkds", configFilename))
	}

	return paths
}

// parseConfigFromArgs collects only the flags given on the command line,
// so unset flags never shadow values from the config file.
func parseConfigFromArgs(cmd *cli.Command) *Config {
	cfg := &Config{
		General: &GeneralOptions{},
		Tree:    &TreeOptions{},
		List:    &ListOptions{},
	}

	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = ptr.FromValue(MustParseLogLevel(cmd.String("log-level")))
	}

	if cmd.IsSet("silent") {
		cfg.General.Silent = ptr.FromValue(cmd.Bool("silent"))
	}

	if cmd.IsSet("tree-insert") {
		cfg.Tree.Insert = cmd.IntSlice("tree-insert")
	}

	if cmd.IsSet("tree-search") {
		cfg.Tree.Search = cmd.IntSlice("tree-search")
	}

	if cmd.IsSet("list-value") {
		cfg.List.Value = ptr.FromValue(cmd.Int("list-value"))
	}

	if cmd.IsSet("list-push") {
		cfg.List.Push = ptr.FromValue(cmd.Int("list-push"))
	}

	if cmd.IsSet("list-pop") {
		cfg.List.Pop = ptr.FromValue(cmd.Int("list-pop"))
	}

	return cfg
}
