package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		kind   string
		outDir string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a PDF report (quarterly, gantt, team or executive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, log, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			resp, err := a.Reports.Generate(cmd.Context(), &request.GenerateReportRequest{Kind: kind})
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Join(outDir, resp.Filename)
			}
			if err := writeFileAtomic(path, resp.Content); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			log.Info("report saved",
				zap.String("report_id", resp.ReportId),
				zap.String("path", path),
			)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "quarterly", "report kind: quarterly, gantt, team or executive")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for the generated file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "exact output path (overrides --out-dir and the default filename)")
	return cmd
}

// writeFileAtomic пишет во временный файл рядом с целевым и переименовывает его
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".okr-report-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
