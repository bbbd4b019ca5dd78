package cmd

import (
	"fmt"
	"time"

	"github.com/avoyan/quittrack/internal/backup"
	"github.com/avoyan/quittrack/internal/cli"

	"github.com/spf13/cobra"
)

var flagExportList bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a timestamped backup of the log",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().BoolVarP(&flagExportList, "list", "l", false, "List existing backups instead of writing one")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if flagExportList {
		return listBackups()
	}

	dst, err := backup.Export(logPath(), backupDir(), time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("\n  Backup saved: %s\n\n", dst)
	return nil
}

func listBackups() error {
	backups, err := backup.List(backupDir())
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("\n  No backups yet. Run `quittrack export` to create one.")
		return nil
	}

	rows := make([][]string, 0, len(backups))
	for _, b := range backups {
		rows = append(rows, []string{
			b.Name,
			cli.FormatNumber(b.Size) + " B",
			b.ModTime.Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Backups",
		Headers: []string{"File", "Size", "Modified"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
