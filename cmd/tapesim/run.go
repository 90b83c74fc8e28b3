package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tapesim/api"
	"github.com/sarchlab/tapesim/compiler"
	"github.com/sarchlab/tapesim/config"
	"github.com/sarchlab/tapesim/core"
	"github.com/sarchlab/tapesim/verify"
)

// Exit codes.
const (
	exitOK = iota
	exitSyntax
	exitFault
	exitUsage
)

type options struct {
	file       string
	expr       string
	configPath string
	tapeSize   int
	maxSteps   uint64
	logLevel   string
	dumpTape   bool
	lint       bool
	disasm     bool
	monitor    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}

	fs := flag.NewFlagSet("tapesim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "", "program source file")
	fs.StringVar(&opts.expr, "e", "", "program source given inline")
	fs.StringVar(&opts.configPath, "config", "", "YAML run configuration")
	fs.IntVar(&opts.tapeSize, "tape-size", core.DefaultTapeSize, "number of cells on the tape")
	fs.Uint64Var(&opts.maxSteps, "max-steps", 0, "stop after this many instructions (0 = no limit)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "trace, debug, info, warn or error")
	fs.BoolVar(&opts.dumpTape, "dump", false, "print the tape around the pointer after the run")
	fs.BoolVar(&opts.lint, "lint", false, "lint and run with the functional simulator, then print a report")
	fs.BoolVar(&opts.disasm, "disasm", false, "print the compiled program and exit")
	fs.BoolVar(&opts.monitor, "monitor", false, "serve the akita monitor while running")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return opts, fs, nil
}

// loadConfig layers explicitly set flags over the config file over defaults.
func loadConfig(opts *options, fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(opts.configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape-size":
			cfg.TapeSize = opts.tapeSize
		case "max-steps":
			cfg.MaxSteps = opts.maxSteps
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "dump":
			cfg.DumpTape = opts.dumpTape
		}
	})

	return cfg, cfg.Validate()
}

func loadSource(opts *options) (string, error) {
	switch {
	case opts.file != "" && opts.expr != "":
		return "", errors.New("use either -file or -e, not both")
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case opts.expr != "":
		return opts.expr, nil
	default:
		return "", errors.New("please provide a program using the -file or -e flag")
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	src, err := loadSource(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	prog, err := compiler.Compile(src)
	if err != nil {
		fmt.Fprintln(stderr, "syntax error:", err)
		return exitSyntax
	}

	if opts.disasm {
		fmt.Fprint(stdout, prog.Disassemble())
		return exitOK
	}

	if opts.lint {
		report := verify.GenerateReport(prog, cfg.TapeSize, cfg.MaxSteps)
		report.WriteReport(stdout)
		if report.Run.Err != nil {
			return exitFault
		}
		return exitOK
	}

	out := bufio.NewWriter(stdout)

	builder := api.DriverBuilder{}.
		WithEngine(sim.NewSerialEngine()).
		WithConfig(cfg).
		WithOutput(out)

	var monitor *monitoring.Monitor
	if opts.monitor {
		monitor = monitoring.NewMonitor()
		builder = builder.WithMonitor(monitor)
	}

	driver := builder.Build("Driver")
	if monitor != nil {
		monitor.StartServer()
	}

	driver.MapProgram(prog)
	runErr := driver.Run()

	if err := out.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	if cfg.DumpTape {
		c := driver.Core()
		core.PrintTape(stderr, c.Tape(), c.Pointer(), cfg.DumpWindow)
	}

	stats := driver.Stats()
	slog.Info("run finished",
		"steps", stats.Steps,
		"halted", stats.Halted,
		"time_ns", float64(stats.Time*1e9),
	)

	if runErr != nil {
		fmt.Fprintln(stderr, "runtime fault:", runErr)
		return exitFault
	}

	return exitOK
}
