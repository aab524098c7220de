package distributions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejensODU/PADS25-DDA-artifacts/distributions"
)

func writeParamsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params_test_exec")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseParamsFileReadsThreeTriples(t *testing.T) {
	path := writeParamsFile(t, "1 2 4\n0.5 1 2\n0.2 0.5 1\n")

	pf, err := distributions.ParseParamsFile(path)
	require.NoError(t, err)

	assert.Equal(t, distributions.Triple{Min: 1, Mode: 2, Max: 4}, pf.IntraArrival)
	assert.Equal(t, distributions.Triple{Min: 0.5, Mode: 1, Max: 2}, pf.Service)
	assert.Equal(t, distributions.Triple{Min: 0.2, Mode: 0.5, Max: 1}, pf.Transit)
}

func TestParseParamsFileRejectsWrongLineCount(t *testing.T) {
	path := writeParamsFile(t, "1 2 4\n0.5 1 2\n")

	_, err := distributions.ParseParamsFile(path)
	assert.Error(t, err)
}

func TestParseParamsFileRejectsWrongFieldCount(t *testing.T) {
	path := writeParamsFile(t, "1 2\n0.5 1 2\n0.2 0.5 1\n")

	_, err := distributions.ParseParamsFile(path)
	assert.Error(t, err)
}

func TestParseParamsFileMissing(t *testing.T) {
	_, err := distributions.ParseParamsFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
