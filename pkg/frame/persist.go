package frame

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Persistence formats.
const (
	DatatypeCSV  = "csv"
	DatatypeXLSX = "xlsx"
	DatatypeHTML = "html"
)

const xlsxSheet = "Sheet1"

// Save writes the table's data columns, without the index, to
// dir/filename.datatype, replacing any existing file. It returns the path
// written.
func (t *Table) Save(ctx context.Context, datatype, dir, filename string) (string, error) {
	var write func(string) error
	switch datatype {
	case DatatypeCSV:
		write = t.writeCSV
	case DatatypeXLSX:
		write = t.writeXLSX
	case DatatypeHTML:
		write = t.writeHTML
	default:
		return "", &UnsupportedFormatError{Format: datatype}
	}
	if filename == "" {
		return "", ErrMissingFilename
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, filename+"."+datatype)
	if err := write(path); err != nil {
		return "", fmt.Errorf("save %s: %w", datatype, err)
	}
	zerolog.Ctx(ctx).Info().Str("datatype", datatype).Str("path", path).Msg("saved table")
	return path, nil
}

func (t *Table) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns()); err != nil {
		return err
	}
	for _, row := range t.rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = formatCell(v)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func (t *Table) writeHTML(path string) error {
	tw := table.NewWriter()
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().HTML.CSSClass = "dataframe"

	header := table.Row{}
	for _, c := range t.Columns() {
		header = append(header, c)
	}
	tw.AppendHeader(header)
	for _, row := range t.rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = formatCell(v)
		}
		tw.AppendRow(r)
	}
	return os.WriteFile(path, []byte(tw.RenderHTML()+"\n"), 0o644)
}

func (t *Table) writeXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(t.columns))
	for i, c := range t.Columns() {
		header[i] = c
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := make([]any, len(row))
		for c, v := range row {
			vals[c] = xlsxValue(v)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &vals); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func xlsxValue(v any) any {
	switch x := v.(type) {
	case nil, string, bool, float64, int, int64:
		return x
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x
	default:
		return formatCell(x)
	}
}
