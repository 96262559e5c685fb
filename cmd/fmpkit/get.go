package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/seenimoa/fmpkit/internal/endpoint"
	"github.com/seenimoa/fmpkit/pkg/fmp"
	"github.com/seenimoa/fmpkit/pkg/frame"
)

var getCmd = &cobra.Command{
	Use:   "get [endpoint]",
	Short: "Fetch an endpoint and print it as a table",
	Long: `Fetch a catalog endpoint, normalize the response and print it.

Examples:
  fmpkit get profile -p symbol=AAPL
  fmpkit get income-statement -p symbol=MSFT -p period=annual --format B
  fmpkit get historical-price-full -p symbol=AAPL -p from=2024-01-01 --reversed
  fmpkit get quote -p symbol=AAPL,MSFT --save --datatype xlsx --output ./data
  fmpkit get company-outlook -p symbol=AAPL --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	addGetFlags(getCmd)
}

func addGetFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayP("param", "p", nil, "query parameter as key=value (repeatable)")
	f.String("index", "", "column to use as the index")
	f.StringSlice("ignore", nil, "columns to drop")
	f.Bool("transpose", false, "swap rows and columns")
	f.Bool("no-transpose", false, "disable the endpoint's default transposition")
	f.String("format", "", "rescale numbers: M, mil, B or bil")
	f.Bool("reversed", false, "flip the row order by index")
	f.Bool("no-datetime", false, "keep a date index as text")
	f.Bool("save", false, "save the table to disk")
	f.String("datatype", "", "file format for --save: csv, xlsx or html (default: output.datatype)")
	f.String("output", "", "directory for --save (default: output.path)")
	f.String("filename", "", "file name for --save without extension (default: endpoint name)")
	f.Bool("raw", false, "print the response body untouched")
	f.Bool("json", false, "print the normalized table as JSON records")
}

func runGet(cmd *cobra.Command, args []string) error {
	pairs, _ := cmd.Flags().GetStringArray("param")
	params, err := parseParams(pairs)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	name := args[0]

	ep, err := client.Endpoint(name)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")
	if raw || ep.Shape == endpoint.ShapeRaw {
		body, err := client.Raw(ctx, name, params)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(body))
		return err
	}

	opts, err := tableOptions(cmd)
	if err != nil {
		return err
	}
	tbl, err := client.Table(ctx, name, params, opts...)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tbl)
	}
	tbl.Render(out)
	return nil
}

// tableOptions turns the flags the user actually set into pipeline options,
// so endpoint defaults stay in effect otherwise.
func tableOptions(cmd *cobra.Command) ([]frame.Option, error) {
	f := cmd.Flags()
	var opts []frame.Option

	if f.Changed("index") {
		v, _ := f.GetString("index")
		opts = append(opts, frame.WithIndex(v))
	}
	if f.Changed("ignore") {
		v, _ := f.GetStringSlice("ignore")
		opts = append(opts, frame.WithIgnore(v...))
	}

	on, _ := f.GetBool("transpose")
	off, _ := f.GetBool("no-transpose")
	switch {
	case on && off:
		return nil, fmt.Errorf("--transpose and --no-transpose are mutually exclusive")
	case on:
		opts = append(opts, frame.WithTranspose(true))
	case off:
		opts = append(opts, frame.WithTranspose(false))
	}

	if v, _ := f.GetString("format"); v != "" {
		opts = append(opts, frame.WithFormat(v))
	}
	if v, _ := f.GetBool("reversed"); v {
		opts = append(opts, frame.WithReversed(true))
	}
	if v, _ := f.GetBool("no-datetime"); v {
		opts = append(opts, frame.WithToDatetime(false))
	}

	if save, _ := f.GetBool("save"); save {
		datatype, _ := f.GetString("datatype")
		if datatype == "" {
			datatype = cfg.Output.Datatype
		}
		dir, _ := f.GetString("output")
		filename, _ := f.GetString("filename")
		opts = append(opts, frame.WithSave(datatype, dir, filename))
	}
	return opts, nil
}

// parseParams converts key=value pairs into query parameters. Symbol
// values are kept as typed so batch forms like AAPL,MSFT pass through.
func parseParams(pairs []string) (fmp.QueryParams, error) {
	params := fmp.QueryParams{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: want key=value", pair)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}
