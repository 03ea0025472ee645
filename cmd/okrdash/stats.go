package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/response"
	"github.com/spf13/cobra"
)

const formatTable = "table"

func newStatsCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print objective statistics and team progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, log, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			resp, err := a.Stats.GetStats(cmd.Context())
			if err != nil {
				return err
			}

			if format == formatTable {
				return writeStatsTable(cmd.OutOrStdout(), resp)
			}
			return writeFormatted(cmd.OutOrStdout(), format, resp)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeStatsTable(w io.Writer, resp *response.StatsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Total objectives\t%d\n", resp.Total)
	fmt.Fprintf(tw, "Completed\t%d\n", resp.Completed)
	fmt.Fprintf(tw, "At risk\t%d\n", resp.AtRisk)
	fmt.Fprintf(tw, "Average progress\t%d%%\n", resp.AverageProgress)
	for _, status := range domain.ObjectiveStatuses {
		fmt.Fprintf(tw, "  %s\t%d\n", status.Label(), resp.ByStatus[status])
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TEAM\tMEMBERS\tOBJECTIVES\tPROGRESS")
	for _, team := range resp.Teams {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d%%\n", team.Name, team.Members, team.Objectives, team.Progress)
	}
	return tw.Flush()
}
