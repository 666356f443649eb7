package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habittrack/internal/constants"
	"github.com/julianstephens/habittrack/internal/export"
	"github.com/julianstephens/habittrack/internal/models"
)

type DataCmd struct {
	Export DataExportCmd `cmd:"" help:"Export habits and check-ins to a .habittrack file."`
	Import DataImportCmd `cmd:"" help:"Import a .habittrack file (replaces all current data)."`
	Reset  DataResetCmd  `cmd:"" help:"Erase all habits and check-ins."`
}

type DataExportCmd struct {
	File string `arg:"" optional:"" help:"Output file (default: habit-tracker-backup-<date>.habittrack)."`
}

func (c *DataExportCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	path := c.File
	if path == "" {
		path = constants.ExportFilePrefix + now.Format(models.DayFormat) + constants.ExportFileExt
	}

	if err := export.WriteFile(path, s.State(), now); err != nil {
		return err
	}

	fmt.Printf("Exported data to %s\n", path)
	return nil
}

type DataImportCmd struct {
	File  string `arg:"" help:"The .habittrack file to import."`
	Force bool   `help:"Skip confirmation."`
}

func (c *DataImportCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	// Validate before touching the store; a bad file must leave state intact.
	data, err := export.ReadFile(c.File)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Importing replaces all current habits and check-ins. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	s.ImportData(data.Habits, data.CheckIns)
	fmt.Printf("Imported %d habits from %s\n", len(data.Habits), c.File)
	return nil
}

type DataResetCmd struct {
	Force bool `help:"Skip confirmation."`
}

func (c *DataResetCmd) Run(ctx *Context) error {
	s, err := ctx.Load()
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Erase all habits and check-ins? This cannot be undone. [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	s.ResetData()
	fmt.Println("All data erased.")
	return nil
}
