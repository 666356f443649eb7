package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habittrack/internal/cli"
	"github.com/julianstephens/habittrack/internal/errors"
	"github.com/julianstephens/habittrack/internal/logger"
	"github.com/julianstephens/habittrack/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	DataFile string `name:"data" help:"Data file path." type:"path" default:"~/.config/habittrack/habittrack.db"`
	Debug    bool   `help:"Enable verbose logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize habittrack storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit cli.HabitCmd `cmd:"" help:"Manage habits."`
	Check cli.CheckCmd `cmd:"" help:"Toggle a habit's check-in for a day."`
	Set   cli.SetCmd   `cmd:"" help:"Set a habit's numeric value for a day."`
	Note  cli.NoteCmd  `cmd:"" help:"Attach a note to a habit's day."`
	Log   cli.LogCmd   `cmd:"" help:"Show the check-in heatmap."`
	Stats cli.StatsCmd `cmd:"" help:"Show habit statistics."`
	Data  cli.DataCmd  `cmd:"" help:"Export, import or reset all data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habittrack"),
		kong.Description("Personal habit tracker with streaks and heatmaps"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:   CLI.Debug,
		DataDir: filepath.Dir(CLI.DataFile),
	}); err != nil {
		errors.Fatal(err)
	}

	// Determine storage type based on extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.DataFile, ".json") {
		provider = storage.NewJSONStore(CLI.DataFile)
	} else {
		provider = storage.NewSQLiteStore(CLI.DataFile)
	}
	defer provider.Close()

	appCtx := &cli.Context{
		Provider: provider,
		Debug:    CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
