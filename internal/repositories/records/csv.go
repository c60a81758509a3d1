package records

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
)

// Config holds the configuration for a file backed repository
type Config struct {
	Path string
}

// Validate ensures the path is set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Path == "" {
		vb.RequiredField("path")
	}
	return vb.Build()
}

type csvRepository struct {
	path string
}

// NewCSVRepository creates a repository backed by a CSV file with a header row
func NewCSVRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &csvRepository{path: cfg.Path}, nil
}

// Ensure csvRepository implements Repository
var _ Repository = (*csvRepository)(nil)

// Load reads the whole file and returns its creatures sorted by id
func (r *csvRepository) Load(ctx context.Context) (*LoadOutput, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Unavailablef("data file %s does not exist", r.path).
				WithMeta("path", r.path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open data file").
			WithMeta("path", r.path)
	}
	defer func() { _ = f.Close() }()

	return decodeCSV(ctx, f)
}

func decodeCSV(ctx context.Context, src io.Reader) (*LoadOutput, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.Unavailable("data file is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read header")
	}

	index := newHeaderIndex(header)
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.Unavailablef("missing required column %q", col).
				WithMeta("column", col)
		}
	}

	out := &LoadOutput{}
	dec := &rowDecoder{index: index}
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "load canceled")
		}

		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read data row").
				WithMeta("row", line)
		}

		dec.row = row
		dec.line = line
		if c, ok := dec.decode(); ok {
			out.Creatures = append(out.Creatures, c)
		}
	}

	if len(out.Creatures) == 0 {
		return nil, errors.Unavailable("data file has no records")
	}

	sort.SliceStable(out.Creatures, func(i, j int) bool {
		return out.Creatures[i].ID < out.Creatures[j].ID
	})
	out.Failures = dec.failures

	return out, nil
}

// Save writes the snapshot to a temporary file next to the target and renames
// it into place, so readers never observe a partial file.
func (r *csvRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if len(input.Creatures) == 0 {
		return nil, errors.InvalidArgument("snapshot has no creatures")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "save canceled")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := encodeCSV(tmp, input.Creatures); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return nil, errors.Wrapf(err, "failed to replace %s", r.path)
	}

	return &SaveOutput{Written: len(input.Creatures)}, nil
}

func encodeCSV(dst io.Writer, creatures []*entities.Creature) error {
	sorted := slices.Clone(creatures)
	slices.SortStableFunc(sorted, func(a, b *entities.Creature) int {
		return a.ID - b.ID
	})

	w := csv.NewWriter(dst)
	if err := w.Write(Columns); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, c := range sorted {
		if err := w.Write(encodeRow(c)); err != nil {
			return errors.Wrapf(err, "failed to write creature %d", c.ID)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "failed to flush rows")
	}
	return nil
}
