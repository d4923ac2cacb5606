package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wifiscan/internal/allocator"
	"wifiscan/internal/config"
	"wifiscan/pkg/channels"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/radio"
)

func planCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Prints the bucket schedule the configured requests compile to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			file, err := config.LoadRequests(cfg.RequestsFile)
			if err != nil {
				return err
			}
			requests, err := file.ScanRequests()
			if err != nil {
				return err
			}

			names := make(map[string]string, len(requests))
			for i, r := range requests {
				names[r.ID.String()] = file.Requests[i].Name
			}

			caps := radio.Capabilities{
				MaxBuckets:           cfg.Radio.MaxBuckets,
				MaxChannelsPerBucket: cfg.Radio.MaxChannelsPerBucket,
				MaxApPerScan:         cfg.Radio.MaxApPerScan,
				MaxScanCacheSize:     cfg.Radio.MaxScanCacheSize,
			}
			schedule, err := allocator.Build(ctx, requests, allocator.NewOptions(caps, cfg))
			if err != nil {
				return fmt.Errorf("could not build schedule: %w", err)
			}

			logger.Info(ctx, "schedule built",
				zap.Int("requests", len(requests)), zap.Int("buckets", len(schedule.Buckets)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base period %s, %d aps per scan, report after %d scans or %d%%, %d back-off bucket(s)\n\n",
				schedule.BasePeriod, schedule.MaxApPerScan,
				schedule.ReportThresholdNumScans, schedule.ReportThresholdPercent,
				schedule.NumBackoffBuckets())

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BUCKET\tPERIOD\tMAX PERIOD\tSTEPS\tREPORT\tCHANNELS\tFREQS\tREQUESTS")
			for i, b := range schedule.Buckets {
				spec := b.Channels.Band.String()
				if len(b.Channels.Frequencies) > 0 {
					spec = fmt.Sprint(b.Channels.Frequencies)
				}

				reqs := make([]string, 0, len(b.Requests))
				for _, id := range b.Requests {
					reqs = append(reqs, names[id.String()])
				}

				maxPeriod := "-"
				if b.IsBackoff() {
					maxPeriod = b.MaxPeriod.String()
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%d\t%v\n",
					i, b.Period, maxPeriod, b.StepCount, b.ReportEvents, spec,
					len(channels.Resolve(b.Channels)), reqs)
			}

			return w.Flush()
		},
	}
	cmd.SetOut(os.Stdout)

	return cmd
}
