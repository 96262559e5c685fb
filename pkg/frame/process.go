package frame

import (
	"context"
	"fmt"
)

// Options controls the normalization pipeline.
type Options struct {
	Index      string   // explicit index column; empty selects one heuristically
	Ignore     []string // columns to drop
	Transpose  bool
	Save       bool
	Datatype   string // csv, xlsx or html
	OutputPath string
	Filename   string
	Format     string // M, mil, B or bil; empty leaves numbers alone
	ToDatetime bool   // parse a date-like index
	Reversed   bool
	KeyMode    KeyMode
}

// Option mutates Options.
type Option func(*Options)

// NewOptions returns the pipeline defaults (csv output, date parsing on)
// with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		Datatype:   DatatypeCSV,
		OutputPath: ".",
		ToDatetime: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithIndex(column string) Option { return func(o *Options) { o.Index = column } }

func WithIgnore(columns ...string) Option {
	return func(o *Options) { o.Ignore = append([]string(nil), columns...) }
}

func WithTranspose(on bool) Option { return func(o *Options) { o.Transpose = on } }

func WithFormat(format string) Option { return func(o *Options) { o.Format = format } }

func WithToDatetime(on bool) Option { return func(o *Options) { o.ToDatetime = on } }

func WithReversed(on bool) Option { return func(o *Options) { o.Reversed = on } }

func WithKeyMode(mode KeyMode) Option { return func(o *Options) { o.KeyMode = mode } }

// WithSave enables persistence to dir/filename.datatype.
func WithSave(datatype, dir, filename string) Option {
	return func(o *Options) {
		o.Save = true
		if datatype != "" {
			o.Datatype = datatype
		}
		if dir != "" {
			o.OutputPath = dir
		}
		if filename != "" {
			o.Filename = filename
		}
	}
}

// WithOutputPath sets the directory used when saving.
func WithOutputPath(dir string) Option { return func(o *Options) { o.OutputPath = dir } }

// WithFilename sets the file name (without extension) used when saving.
func WithFilename(name string) Option { return func(o *Options) { o.Filename = name } }

// Process runs the full pipeline over decoded records: build, index, drop,
// transpose, rescale, reverse and finally save. Any failing step aborts the
// pipeline and no table is returned.
func Process(ctx context.Context, records []Record, o Options) (*Table, error) {
	return ProcessTable(ctx, FromRecords(records, o.KeyMode), o)
}

// ProcessTable runs every step after table construction.
func ProcessTable(ctx context.Context, t *Table, o Options) (*Table, error) {
	var err error

	if o.Index != "" {
		if t.Empty() {
			return t, nil
		}
		if t, err = t.SetIndex(o.Index, o.ToDatetime); err != nil {
			return nil, err
		}
	} else if t, err = t.SelectIndex("", o.ToDatetime); err != nil {
		return nil, err
	}

	if len(o.Ignore) > 0 {
		if t, err = t.Drop(o.Ignore...); err != nil {
			return nil, err
		}
	}
	if o.Transpose {
		t = t.Transpose()
	}
	if o.Format != "" {
		if t, err = t.Rescale(o.Format); err != nil {
			return nil, err
		}
	}
	if o.Reversed {
		t = t.Reverse()
	}
	if o.Save {
		if _, err := t.Save(ctx, o.Datatype, o.OutputPath, o.Filename); err != nil {
			return nil, fmt.Errorf("persist table: %w", err)
		}
	}
	return t, nil
}
