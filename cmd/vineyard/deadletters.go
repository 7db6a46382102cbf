package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/osse101/VineyardSim_Go/internal/config"
	"github.com/osse101/VineyardSim_Go/internal/event"
)

func writeDeadLetters(w io.Writer, entries []event.DeadLetterEntry, now time.Time) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No dead-lettered events.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tTYPE\tGAME\tATTEMPTS\tLAST ERROR")
	for _, e := range entries {
		game := e.Event.GameID()
		if game == "" {
			game = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			humanize.RelTime(e.Timestamp, now, "ago", "from now"),
			e.Event.Type, game, e.Attempts, e.LastError)
	}
	fmt.Fprintf(tw, "\n%s event(s)\n", humanize.Comma(int64(len(entries))))
	return tw.Flush()
}

func deadLettersCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "deadletters",
		Short: "List events the publisher gave up on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := event.ReadDeadLetters(path)
			if err != nil {
				return err
			}
			return writeDeadLetters(cmd.OutOrStdout(), entries, time.Now())
		},
	}
	cmd.Flags().StringVar(&path, "file", config.DefaultEventDeadLetterPath, "Dead-letter file")
	return cmd
}
