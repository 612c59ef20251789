// Command gensine generates a single-quadrant sine table set as two hex
// memory-initialization files, sine_integer.hex and sine_fract.hex.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bsm/sinetable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	Dir      string
	Params   sinetable.Params
	Compress bool
	Verify   bool
	Verbose  bool
}

func parseFlags(name string, args []string, output io.Writer) (*config, error) {
	cfg := new(config)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Dir, "dir", ".", "output directory")
	fs.IntVar(&cfg.Params.Slices, "slices", sinetable.DefaultSlices, "number of slices")
	fs.IntVar(&cfg.Params.PointsPerSlice, "points", sinetable.DefaultPointsPerSlice, "points per slice")
	fs.BoolVar(&cfg.Compress, "compress", false, "write snappy compressed .sz files")
	fs.BoolVar(&cfg.Verify, "verify", false, "read the written files back and verify them")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.Params.Slices < 1 || cfg.Params.PointsPerSlice < 1 {
		err = fmt.Errorf("slices and points must be positive, got %d and %d", cfg.Params.Slices, cfg.Params.PointsPerSlice)
	} else {
		err = cfg.Params.Validate()
	}
	if err != nil {
		fmt.Fprintln(output, err)
		fs.Usage()
		return nil, err
	}
	return cfg, nil
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

func realMain(args []string, stderr io.Writer) int {
	cfg, err := parseFlags("gensine", args, stderr)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	log := newLogger(stderr, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	if err := run(log, cfg); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	ec := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}
	level := zap.InfoLevel
	if verbose {
		ec.LevelKey = "level"
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func run(log *zap.SugaredLogger, cfg *config) error {
	log.Info("Generating the sine table.")

	t, err := sinetable.Generate(&cfg.Params)
	if err != nil {
		return err
	}
	log.Debugw("generated", "indices", t.Indices(), "boundary", t.Values[t.Indices()])

	o := &sinetable.WriterOptions{Compression: sinetable.NoCompression}
	ext := ""
	if cfg.Compress {
		o.Compression = sinetable.SnappyCompression
		ext = ".sz"
	}

	ipath := filepath.Join(cfg.Dir, sinetable.IntegerFileName+ext)
	if err := writeFile(ipath, func(w io.Writer) error { return t.WriteValues(w, o) }); err != nil {
		return err
	}
	log.Debugw("written", "path", ipath)

	fpath := filepath.Join(cfg.Dir, sinetable.FractionFileName+ext)
	if err := writeFile(fpath, func(w io.Writer) error { return t.WriteDeltas(w, o) }); err != nil {
		return err
	}
	log.Debugw("written", "path", fpath)

	if !cfg.Verify {
		return nil
	}

	values, err := readFile(ipath)
	if err != nil {
		return err
	}
	deltas, err := readFile(fpath)
	if err != nil {
		return err
	}
	if err := sinetable.VerifyFiles(values, deltas, &cfg.Params); err != nil {
		return err
	}
	log.Debugw("verified", "values", len(values), "deltas", len(deltas))
	return nil
}

func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	return f.Close()
}

func readFile(name string) ([]int64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sinetable.ReadAll(f)
}
