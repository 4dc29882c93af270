package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/display"
	"github.com/joseph-ayodele/ftw-report/internal/export"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

var errNoReport = common.NewAppError(common.CodeInvalidInput,
	"No hay un informe actual; ejecute 'ftw analyze <archivo>'.", common.ErrNotFound)

func loadCurrent(cmd *cobra.Command) (report.Record, error) {
	rec, err := currentRecord(cmd.Context())
	if errors.Is(err, common.ErrNotFound) {
		return report.Record{}, errNoReport
	}
	return rec, err
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadCurrent(cmd)
		if err != nil {
			return err
		}
		return display.Render(cmd.OutOrStdout(), rec)
	},
}

var copyPrint bool

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the current report as text to the clipboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadCurrent(cmd)
		if err != nil {
			return err
		}
		text, err := export.NewService(nil, logger).Copy(rec)
		if copyPrint || err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copiado!")
		return nil
	},
}

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current report as a PDF (or XLSX) file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadCurrent(cmd)
		if err != nil {
			return err
		}
		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		path, err := export.NewService(nil, logger).Export(rec, exportFormat, dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, closeFn, err := openSessions(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		if err := sessions.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Listo para analizar otro FTW.")
		return nil
	},
}

func init() {
	copyCmd.Flags().BoolVar(&copyPrint, "print", false, "also print the copied text")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatPDF, "pdf or xlsx")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (default EXPORT_DIR)")
}
