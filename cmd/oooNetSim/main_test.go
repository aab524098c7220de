package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEndOverRingTopology(t *testing.T) {
	dir := t.TempDir()

	paramsPath := filepath.Join(dir, "params_default_exec")
	require.NoError(t, os.WriteFile(paramsPath, []byte("1 2 4\n0.5 1 2\n0.2 0.5 1\n"), 0o644))

	tracePath := filepath.Join(dir, "trace_out.csv")
	configPath := filepath.Join(dir, "model.cfg")
	configContents := "model_name: ring_5_test\n" +
		"num_vertices_per_ring: 5\n" +
		"max_sim_time: 50\n" +
		"dist_seed: 13\n" +
		"num_serial_OoO_execs: -2\n" +
		"dist_params_file: " + paramsPath + "\n" +
		"trace_file: " + tracePath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configContents), 0o644))

	err := run(configPath)
	require.NoError(t, err)

	contents, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "event_sequence_num")
}

func TestRunRejectsMissingConfig(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "nope.cfg"))
	assert.Error(t, err)
}
