package itl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ejensODU/PADS25-DDA-artifacts/vgraph"
)

// infSentinel is the numeric stand-in for +Inf when an ITL table is
// serialized to CSV: large enough to exceed any plausible t_k - t_j
// separation a real run would produce.
const infSentinel = 1e18

// ErrTableDimensionMismatch indicates a cached ITL table's dimensions
// disagree with the live model's vertex count.
var ErrTableDimensionMismatch = errors.New("itl: cached table dimension mismatch")

// WriteCSV serializes t as dense rows of comma-separated float64, with
// +Inf rendered as infSentinel, to path.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("itl: WriteCSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for j := 0; j < t.n; j++ {
		row := make([]string, t.n)
		for k := 0; k < t.n; k++ {
			v := t.data[j][k]
			if math.IsInf(v, 1) {
				v = infSentinel
			}
			row[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("itl: WriteCSV: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadTableCSV loads an ITL table from path, validating its dimensions
// against n (the live model's vertex count). A dimension disagreement is
// fatal per the construction policy of §4.2: the cache is trustworthy
// only for the model it was built for.
func ReadTableCSV(path string, n int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("itl: ReadTableCSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("itl: ReadTableCSV: %w", err)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("itl: ReadTableCSV(%s): %d rows, want %d: %w", path, len(rows), n, ErrTableDimensionMismatch)
	}

	tbl := newTable(n)
	for j, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("itl: ReadTableCSV(%s): row %d has %d cols, want %d: %w", path, j, len(row), n, ErrTableDimensionMismatch)
		}
		for k, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("itl: ReadTableCSV(%s): row %d col %d: %w", path, j, k, err)
			}
			if v >= infSentinel {
				v = math.Inf(1)
			}
			tbl.set(j, k, v)
		}
	}
	return tbl, nil
}

// CachePath returns the ITL cache file path for a model named modelName,
// relative to the running executable's directory: ITL_tables/<modelName>.csv.
func CachePath(modelName string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("itl: CachePath: %w", err)
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, "ITL_tables", modelName+".csv"), nil
}

// LoadOrBuild returns the cached ITL table for g under modelName if a
// cache file exists, otherwise builds it and writes the cache file
// (creating ITL_tables/ if necessary). A cache file whose dimensions
// disagree with g's live vertex count is fatal (ErrTableDimensionMismatch)
// per the construction policy of §4.2 — it is not silently regenerated,
// since that would mask a model/cache mismatch the caller needs to know
// about.
func LoadOrBuild(g *vgraph.Graph, modelName string) (*Table, error) {
	path, err := CachePath(modelName)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		return ReadTableCSV(path, g.NumVertices())
	}

	tbl, err := Build(g)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("itl: LoadOrBuild: %w", err)
	}
	if err := tbl.WriteCSV(path); err != nil {
		return nil, err
	}
	return tbl, nil
}
