package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/applog"
	"github.com/xvzc/linkds/internal/config"
	"github.com/xvzc/linkds/internal/datastruct/list"
	"github.com/xvzc/linkds/internal/datastruct/tree"
	"github.com/xvzc/linkds/version"
)

func main() {
	cmd := config.CreateCommand(runApp, version.Version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger := applog.WithScope(applog.NewLogger(os.Stderr, zerolog.InfoLevel), "MAIN")
		logger.Fatal().Err(err).Msg("failed to run linkds")
	}
}

func runApp(_ context.Context, configPath string, cfg *config.Config) error {
	baseLogger := applog.NewLogger(os.Stderr, *cfg.General.LogLevel)
	logger := applog.WithScope(baseLogger, "MAIN")

	if !*cfg.General.Silent {
		printBanner(cfg)
	}

	if configPath != "" {
		logger.Info().Str("path", configPath).Msg("config file loaded")
	}

	s, err := runWorkload(os.Stdout, baseLogger, cfg)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("tree_dropped", s.treeDropped).
		Int("list_dropped", s.listDropped).
		Msg("workload finished")

	out, err := pterm.DefaultTable.WithHasHeader().WithData(s.tableData()).Srender()
	if err != nil {
		return fmt.Errorf("error rendering summary: %w", err)
	}

	fmt.Fprintln(os.Stdout, out)

	return nil
}

// summary holds what the workload observed before both containers were
// torn down.
type summary struct {
	treeLen     int
	treeHeight  int
	found       int
	missed      int
	listLen     int
	listFront   string
	listBack    string
	treeDropped int
	listDropped int
}

func (s summary) tableData() pterm.TableData {
	return pterm.TableData{
		{"Container", "Metric", "Value"},
		{"tree", "nodes", strconv.Itoa(s.treeLen)},
		{"tree", "height", strconv.Itoa(s.treeHeight)},
		{"tree", "found", strconv.Itoa(s.found)},
		{"tree", "missed", strconv.Itoa(s.missed)},
		{"list", "length", strconv.Itoa(s.listLen)},
		{"list", "front", s.listFront},
		{"list", "back", s.listBack},
	}
}

// runWorkload drives a tree and a list with the configured values, writing
// search results and the in-order tree to w. Both containers are closed
// before it returns.
func runWorkload(w io.Writer, logger zerolog.Logger, cfg *config.Config) (summary, error) {
	var s summary

	t := tree.NewOrdered[int](applog.WithScope(logger, "TREE"))
	for _, v := range cfg.Tree.Insert {
		t.Insert(v)
	}

	for _, v := range cfg.Tree.Search {
		n, ok := t.Search(v)
		result := "None"
		if ok {
			result = n.String()
			s.found++
		} else {
			s.missed++
		}

		if _, err := fmt.Fprintf(w, "Searching for %d: %s\n", v, result); err != nil {
			t.Close()
			return s, err
		}
	}

	if err := t.Fprint(w); err != nil {
		t.Close()
		return s, err
	}

	s.treeLen = t.Len()
	s.treeHeight = t.Height()
	s.treeDropped = t.Close()

	l := list.New[int](applog.WithScope(logger, "LIST"))
	for range *cfg.List.Push {
		l.PushBack(*cfg.List.Value)
	}

	for range *cfg.List.Pop {
		l.PopFront()
	}

	s.listLen = l.Len()
	s.listFront = describe(l.Front())
	s.listBack = describe(l.Back())
	s.listDropped = l.Close()

	return s, nil
}

func describe(v int, ok bool) string {
	if !ok {
		return "None"
	}

	return strconv.Itoa(v)
}

func printBanner(cfg *config.Config) {
	cyan := putils.LettersFromStringWithStyle("link", pterm.NewStyle(pterm.FgCyan))
	purple := putils.LettersFromStringWithStyle("ds", pterm.NewStyle(pterm.FgLightMagenta))
	_ = pterm.DefaultBigText.WithLetters(cyan, purple).Render()

	_ = pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "TREE INSERT : " + fmt.Sprint(cfg.Tree.Insert)},
		{Level: 0, Text: "TREE SEARCH : " + fmt.Sprint(cfg.Tree.Search)},
		{Level: 0, Text: "LIST PUSH   : " + fmt.Sprintf("%d x %d", *cfg.List.Push, *cfg.List.Value)},
		{Level: 0, Text: "LIST POP    : " + fmt.Sprint(*cfg.List.Pop)},
		{Level: 0, Text: "LOG LEVEL   : " + cfg.General.LogLevel.String()},
	}).Render()
}
