package distributions

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Triple is one (min, mode, max) parameter set for a Triangular generator,
// as read from a distribution-parameter file.
type Triple struct {
	Min, Mode, Max float64
}

// ParamsFile is the parsed contents of a distribution-parameter file: one
// Triple per delay the reference topology schedules.
type ParamsFile struct {
	IntraArrival Triple
	Service      Triple
	Transit      Triple
}

// ParseParamsFile reads a distribution-parameter file: three lines, each
// three whitespace-separated float64 values (min, mode, max), in the
// fixed order intra-arrival, service, transit.
//
// Grounded on Ring_1D.cpp (original_source), which reads its
// distParamsFile the same way: `dist_params_file >> min >> mode >> max`
// three times in a row with no field labels, relying on line order alone.
func ParseParamsFile(path string) (ParamsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParamsFile{}, fmt.Errorf("distributions: ParseParamsFile: %w", err)
	}
	defer f.Close()

	triples := make([]Triple, 0, 3)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(triples) < 3 {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return ParamsFile{}, fmt.Errorf("distributions: ParseParamsFile(%s): line %q: want 3 fields, got %d", path, line, len(fields))
		}
		var t Triple
		vals := [3]*float64{&t.Min, &t.Mode, &t.Max}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return ParamsFile{}, fmt.Errorf("distributions: ParseParamsFile(%s): %w", path, err)
			}
			*vals[i] = v
		}
		triples = append(triples, t)
	}
	if err := scanner.Err(); err != nil {
		return ParamsFile{}, fmt.Errorf("distributions: ParseParamsFile: %w", err)
	}
	if len(triples) != 3 {
		return ParamsFile{}, fmt.Errorf("distributions: ParseParamsFile(%s): want 3 lines, got %d", path, len(triples))
	}

	return ParamsFile{
		IntraArrival: triples[0],
		Service:      triples[1],
		Transit:      triples[2],
	}, nil
}
