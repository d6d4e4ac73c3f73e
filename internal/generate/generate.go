// Package generate orchestrates a generation run: discover fragment
// documents, resolve each one into a mock factory, flush the artifacts, and
// persist the sample identifier registry exactly once.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/camaragon/gql-codegen-tools/internal/config"
	"github.com/camaragon/gql-codegen-tools/internal/discovery"
	"github.com/camaragon/gql-codegen-tools/internal/emit"
	"github.com/camaragon/gql-codegen-tools/internal/eventbus"
	"github.com/camaragon/gql-codegen-tools/internal/events"
	"github.com/camaragon/gql-codegen-tools/internal/fragment"
	"github.com/camaragon/gql-codegen-tools/internal/registry"
	"github.com/camaragon/gql-codegen-tools/internal/resolve"
	"github.com/camaragon/gql-codegen-tools/internal/runid"
	"github.com/camaragon/gql-codegen-tools/internal/schema"
	"github.com/camaragon/gql-codegen-tools/internal/synth"
)

// Generator drives generation runs for one configuration.
type Generator struct {
	cfg *config.Config
	log *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Run generates mocks for every discovered fragment document. Per-document
// failures are logged and skipped; the returned error reflects only
// conditions that invalidate the whole run.
func (g *Generator) Run(ctx context.Context) error {
	source, err := discovery.NewFilesystemSource(g.cfg.Fragments, g.cfg.Suffix)
	if err != nil {
		return err
	}
	return g.run(ctx, source, nil)
}

// RunOne generates mocks for the single document at fragmentPath. Nested
// references still resolve against the whole fragment tree.
func (g *Generator) RunOne(ctx context.Context, fragmentPath string) error {
	source, err := discovery.NewFilesystemSource(g.cfg.Fragments, g.cfg.Suffix)
	if err != nil {
		return err
	}
	name := discovery.DocumentName(strings.TrimSuffix(filepath.Base(fragmentPath), g.cfg.Suffix))
	return g.run(ctx, source, []string{name})
}

func (g *Generator) run(ctx context.Context, source discovery.Source, only []string) error {
	started := time.Now()
	ctx, rid := runid.NewContext(ctx)
	log := g.log.With(zap.Int64("run", rid))

	s, err := schema.Load(g.cfg.Schema)
	if err != nil {
		return err
	}
	reg := registry.New(registry.NewTSStore(g.cfg.Registry))
	if err := reg.Load(); err != nil {
		return err
	}

	infos, err := source.List(ctx)
	if err != nil {
		return err
	}
	if fsSource, ok := source.(*discovery.FilesystemSource); ok {
		for _, dup := range fsSource.Duplicates() {
			log.Warn("duplicate fragment name, ignoring file",
				zap.String("fragment", dup.Name),
				zap.String("path", dup.Path))
		}
	}

	targets := infos
	if len(only) > 0 {
		byName := make(map[string]discovery.Info, len(infos))
		for _, info := range infos {
			byName[info.Name] = info
		}
		targets = nil
		for _, name := range only {
			info, ok := byName[name]
			if !ok {
				// Let the resolver report the miss like any other
				// per-document failure.
				info = discovery.Info{Name: name}
			}
			targets = append(targets, info)
		}
	}
	if len(targets) == 0 {
		log.Warn("no fragment documents found",
			zap.String("root", g.cfg.Fragments),
			zap.String("suffix", g.cfg.Suffix))
		return nil
	}

	eventbus.Publish(ctx, events.RunStart{Schema: g.cfg.Schema, Documents: len(targets)})

	writer := emit.NewWriter(g.cfg.OutDir, emit.Options{
		TypesImport:    g.cfg.TypesImport,
		RegistryImport: g.cfg.RegistryImport,
	}, g.cfg.Workers)
	resolver := resolve.New(resolve.Params{
		Schema:    s,
		Documents: source,
		Registry:  reg,
		Synth:     synth.New(),
		Emitter:   writer,
		Log:       log,
	})

	failed := 0
	for _, info := range targets {
		fragStarted := time.Now()
		eventbus.Publish(ctx, events.FragmentStart{Name: info.Name, Path: info.Path})
		err := resolver.ResolveName(ctx, info.Name)
		eventbus.Publish(ctx, events.FragmentFinish{Name: info.Name, Err: err, Duration: time.Since(fragStarted)})
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		failed++
		var schemaErr *schema.SchemaError
		var parseErr *fragment.ParseError
		switch {
		case errors.As(err, &schemaErr):
			log.Error("fragment references unknown schema element, skipped",
				zap.String("fragment", info.Name), zap.Error(err))
		case errors.As(err, &parseErr):
			log.Error("fragment document failed to parse, skipped",
				zap.String("fragment", info.Name), zap.Error(err))
		default:
			log.Error("fragment failed, skipped",
				zap.String("fragment", info.Name), zap.Error(err))
		}
	}

	written, err := writer.Flush(ctx)
	if err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}
	for _, name := range written {
		log.Info("wrote artifact", zap.String("file", filepath.Join(g.cfg.OutDir, name)))
	}

	if reg.Dirty() {
		if err := reg.Persist(); err != nil {
			return err
		}
		eventbus.Publish(ctx, events.RegistryPersisted{Path: g.cfg.Registry, Entries: reg.Len()})
		log.Info("registry persisted",
			zap.String("path", g.cfg.Registry),
			zap.Int("entries", reg.Len()))
	}

	eventbus.Publish(ctx, events.RunFinish{Artifacts: len(written), Failed: failed, Duration: time.Since(started)})
	log.Info("generation finished",
		zap.Int("documents", len(targets)),
		zap.Int("artifacts", len(written)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(started)))
	return nil
}
