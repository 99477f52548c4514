package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// usage matches spec §6's CLI surface: <input.obj> <output-prefix>
// <ratio[,ratio,...]> <epsilon>, with -precision as the only flag.
func usage() {
	fmt.Fprintln(os.Stderr, "usage: qem-simplify [-precision N] <input.obj> <output-prefix> <ratio[,ratio,...]> <epsilon>")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	initLogging()

	fs := flag.NewFlagSet("qem-simplify", flag.ContinueOnError)
	fs.Usage = usage
	precision := fs.Int("precision", 8, "significant decimal digits in output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 4 {
		usage()
		return 2
	}

	inputPath := fs.Arg(0)
	outputPrefix := fs.Arg(1)
	ratios, err := parseRatios(fs.Arg(2))
	if err != nil {
		log.Error().Err(err).Msg("invalid ratio list")
		return 2
	}
	epsilon, err := strconv.ParseFloat(fs.Arg(3), 64)
	if err != nil {
		log.Error().Err(err).Msg("invalid epsilon")
		return 2
	}

	mesh, err := LoadOBJ(inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("failed to load mesh")
		return 1
	}
	log.Info().Int("vertices", len(mesh.Vertices)).Int("faces", len(mesh.Faces)).Msg("loaded mesh")

	cfg := Config{Ratios: ratios, Epsilon: epsilon, Precision: *precision, OutputPrefix: outputPrefix}

	err = Simplify(mesh, cfg, func(ratio float64, m *Mesh) error {
		outPath := fmt.Sprintf("%s_%s.obj", cfg.OutputPrefix, strconv.FormatFloat(ratio, 'g', -1, 64))
		return DumpOBJ(outPath, m, cfg.Precision)
	})
	if err != nil {
		log.Error().Err(err).Msg("simplification failed")
		return 1
	}

	return 0
}

// parseRatios splits a comma-separated ratio list and validates each
// entry lies in (0,1], per spec §6's Configuration options table.
func parseRatios(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	ratios := make([]float64, 0, len(parts))
	for _, p := range parts {
		r, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: ratio %q is not numeric", ErrInputMalformed, p)
		}
		if r <= 0 || r > 1 {
			return nil, fmt.Errorf("%w: ratio %v out of range (0,1]", ErrInputMalformed, r)
		}
		ratios = append(ratios, r)
	}
	return ratios, nil
}
