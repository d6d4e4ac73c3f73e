package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/camaragon/gql-codegen-tools/internal/config"
	"github.com/camaragon/gql-codegen-tools/internal/eventbus"
	"github.com/camaragon/gql-codegen-tools/internal/generate"
	"github.com/camaragon/gql-codegen-tools/internal/otel"
)

const rootUsage = `gqlmock — TypeScript mock factories from GraphQL fragments

USAGE:
  gqlmock <command> [flags]

COMMANDS:
  generate         Generate mock factory modules from fragment documents
  help             Show help for any command
`

const generateUsage = `generate FLAGS:
  -config <file>           Config file (default: gqlmock.yml)
  -schema <file>           GraphQL SDL schema (default: schema.graphql)
  -fragments <dir>         Fragment document root (default: .)
  -suffix <ext>            Fragment file suffix (default: .fragment.graphql)
  -out <dir>               Output directory for generated modules (default: __mocks__)
  -registry <file>         Sample identifier registry module (default: __mocks__/sample-ids.ts)
  -types-import <path>     Module specifier for generated enum types (default: ../types)
  -registry-import <path>  Module specifier for the identifier registry (default: ./sample-ids)
  -workers <n>             Concurrent artifact writers (default: 4)
  -fragment <file>         Generate a single fragment document only
  -watch                   Stay resident and regenerate on file changes
  -verbose                 Debug logging
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: gqlmock)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("gqlmock", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "generate":
		fmt.Print(generateUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdGenerate(args []string) error {
	configPath := config.DefaultPath
	fragmentPath := ""
	watch := false
	verbose := false
	otelEndpoint := ""
	otelService := "gqlmock"

	var schemaPath, fragmentRoot, suffix, outDir, registryPath, typesImport, registryImport string
	var workers int

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&configPath, "config", configPath, "Config file")
	fs.StringVar(&schemaPath, "schema", schemaPath, "GraphQL SDL schema")
	fs.StringVar(&fragmentRoot, "fragments", fragmentRoot, "Fragment document root")
	fs.StringVar(&suffix, "suffix", suffix, "Fragment file suffix")
	fs.StringVar(&outDir, "out", outDir, "Output directory for generated modules")
	fs.StringVar(&registryPath, "registry", registryPath, "Sample identifier registry module")
	fs.StringVar(&typesImport, "types-import", typesImport, "Module specifier for generated enum types")
	fs.StringVar(&registryImport, "registry-import", registryImport, "Module specifier for the identifier registry")
	fs.IntVar(&workers, "workers", workers, "Concurrent artifact writers")
	fs.StringVar(&fragmentPath, "fragment", fragmentPath, "Generate a single fragment document only")
	fs.BoolVar(&watch, "watch", watch, "Stay resident and regenerate on file changes")
	fs.BoolVar(&verbose, "verbose", verbose, "Debug logging")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, generateUsage)
		return err
	}
	if watch && fragmentPath != "" {
		return fmt.Errorf("-watch and -fragment are mutually exclusive")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "schema":
			cfg.Schema = schemaPath
		case "fragments":
			cfg.Fragments = fragmentRoot
		case "suffix":
			cfg.Suffix = suffix
		case "out":
			cfg.OutDir = outDir
		case "registry":
			cfg.Registry = registryPath
		case "types-import":
			cfg.TypesImport = typesImport
		case "registry-import":
			cfg.RegistryImport = registryImport
		case "workers":
			cfg.Workers = workers
		}
	})

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := generate.New(cfg, logger)
	switch {
	case watch:
		if err := g.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case fragmentPath != "":
		return g.RunOne(ctx, fragmentPath)
	default:
		return g.Run(ctx)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
