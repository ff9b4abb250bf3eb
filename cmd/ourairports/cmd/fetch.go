/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airdata/ourairports-api/pkg/catalog"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

func newFetchCmd() *cobra.Command {
	names := make([]string, 0, len(ourairports.Datasets()))
	for _, d := range ourairports.Datasets() {
		names = append(names, string(d))
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch <dataset>",
		Short: "Download one dataset and print it as JSON",
		Long: `Download one dataset and print every record as JSON, one per line
in ascending id order.

Datasets: ` + strings.Join(names, ", ") + `

Examples:
  ourairports fetch countries
  ourairports fetch airports --id 2434 --pretty`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE:      runFetch,
	}

	fetchCmd.Flags().Uint64("id", 0, "Print only the record with this id")
	fetchCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	return fetchCmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	d, err := ourairports.ParseDataset(args[0])
	if err != nil {
		return err
	}
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	c, err := requireContainer()
	if err != nil {
		return err
	}

	fetcher := c.GetFetcherFactory().CreateFetcher(cfg.Source.Timeout, cfg.Source.UserAgent)
	loader := catalog.NewLoader(fetcher, cfg.SourceURL, nil)

	logger.Debug("fetching dataset", "dataset", d, "url", cfg.SourceURL(d))
	table, err := loader.LoadDataset(cmd.Context(), d)
	if err != nil {
		return err
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	encode := ourairports.ToJSON
	if pretty {
		encode = ourairports.ToJSONPretty
	}

	records := table.Records()
	if cmd.Flags().Changed("id") {
		id, _ := cmd.Flags().GetUint64("id")
		record, ok := table.Record(ourairports.ID(id))
		if !ok {
			return fmt.Errorf("no record with id %d in %s", id, d)
		}
		records = []ourairports.Record{record}
	}

	out := cmd.OutOrStdout()
	for _, r := range records {
		line, err := encode(r)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
