// Package config reads the kernel's model configuration file: plain
// "key: value" lines, one setting per line, unknown keys ignored.
//
// Grounded on OoO_Sim.cpp (original_source), which reads its config file
// as a sequence of `getline(in_file, line, ':'); in_file >> value;` pairs
// — a label up to the colon (discarded beyond identifying which field is
// next) followed by a whitespace-delimited value token. This package
// keeps the same two-part shape but is key-driven rather than
// position-driven: lines are `key: value`, keys are matched by name, and
// unrecognized keys are ignored rather than causing a field-count drift
// the way the original's strict positional reads would.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Model is the parsed contents of a configuration file.
type Model struct {
	ModelName          string
	NumVerticesPerRing int
	MaxSimTime         float64
	DistSeed           int64
	NumSerialOoOExecs  int
	DistParamsFile     string
	TraceFile          string
	ReferenceTraceFile string
}

// Load reads and parses the configuration file at path.
func Load(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, fmt.Errorf("config: Load: %w", err)
	}
	defer f.Close()

	var m Model
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var parseErr error
		switch key {
		case "model_name":
			m.ModelName = value
		case "num_vertices_per_ring":
			m.NumVerticesPerRing, parseErr = strconv.Atoi(value)
		case "max_sim_time":
			m.MaxSimTime, parseErr = strconv.ParseFloat(value, 64)
		case "dist_seed":
			m.DistSeed, parseErr = strconv.ParseInt(value, 10, 64)
		case "num_serial_OoO_execs":
			m.NumSerialOoOExecs, parseErr = strconv.Atoi(value)
		case "dist_params_file":
			m.DistParamsFile = value
		case "trace_file":
			m.TraceFile = value
		case "reference_trace_file":
			m.ReferenceTraceFile = value
		default:
			// unknown keys are ignored per package doc
		}
		if parseErr != nil {
			return Model{}, fmt.Errorf("config: Load(%s): line %d (%s): %w", path, lineNum, key, parseErr)
		}
	}
	if err := scanner.Err(); err != nil {
		return Model{}, fmt.Errorf("config: Load: %w", err)
	}
	return m, nil
}
