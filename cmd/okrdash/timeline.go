package main

import (
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/spf13/cobra"
)

func newTimelineCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the week-by-week layout of key actions and milestones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, log, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			// Сетка уже учтена в конфигурации через общие флаги
			resp, err := a.Timeline.GetTimeline(cmd.Context(), &request.TimelineRequest{})
			if err != nil {
				return err
			}
			return writeFormatted(cmd.OutOrStdout(), format, resp)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}
