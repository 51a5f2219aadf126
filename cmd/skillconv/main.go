// skillconv converts one nested skill document (JSON or YAML) into a flat
// CSV row: one header line, one value line, written next to the input with
// a .csv extension.
//
// Usage:
//
//	skillconv [-config skillconv.toml] [-o out.csv] [-include-maps] skill.json
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skillforge/skillconv/internal/config"
	"github.com/skillforge/skillconv/internal/eventlog"
	"github.com/skillforge/skillconv/internal/flatten"
	"github.com/skillforge/skillconv/internal/loader"
	"github.com/skillforge/skillconv/internal/sink"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	outPath := flag.String("o", "", "output path (default: input path with .csv extension)")
	includeMaps := flag.Bool("include-maps", false, "also flatten proficiency/debuff maps into columns")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: skillconv [flags] <skill.json|skill.yaml>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *outPath, *includeMaps); err != nil {
		fmt.Fprintf(os.Stderr, "skillconv: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, outPath string, includeMaps bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if includeMaps {
		cfg.Convert.IncludeMaps = true
	}

	collector := eventlog.New(zapcore.DebugLevel)
	log, err := newLogger(cfg.Logging, collector)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	sk, err := loader.LoadFile(inputPath, log)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return err
	}

	row, err := flatten.Encode(sk, flatten.Options{
		IncludeMaps: cfg.Convert.IncludeMaps,
		Delimiter:   cfg.Convert.ListDelimiter,
	})
	if err != nil {
		log.Error("flatten failed", zap.Error(err))
		return err
	}

	// The destination always carries the tabular extension, even when -o
	// names something else.
	dest := outPath
	if dest == "" {
		dest = inputPath
	}
	dest = sink.OutputPath(dest)

	if err := sink.Write(dest, row.Header, row.Values, log); err != nil {
		log.Error("write failed", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, collector *eventlog.Collector) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	base, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, collector)
	})), nil
}
