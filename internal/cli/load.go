package cli

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/builder"
	"github.com/t14raptor/go-stmt/checker"
	"github.com/t14raptor/go-stmt/consteval"
	"github.com/t14raptor/go-stmt/fixture"
	"github.com/t14raptor/go-stmt/internal/config"
	"github.com/t14raptor/go-stmt/resolver"
	"github.com/t14raptor/go-stmt/transform/deadcode"
	"github.com/t14raptor/go-stmt/transform/simplifier"
)

// unit is one loaded file. Each unit owns its tree, so units are processed
// concurrently without sharing anything.
type unit struct {
	path  string
	tree  *ast.Tree
	res   *resolver.Result
	diags checker.Diagnostics
}

type stage func(u *unit, cfg *config.Config, logger *slog.Logger) error

// loadAll loads paths with at most cfg.Jobs files in flight and runs each
// stage on every unit. Results keep the order of paths.
func loadAll(ctx context.Context, cfg *config.Config, logger *slog.Logger, paths []string, stages ...stage) ([]*unit, error) {
	units := make([]*unit, len(paths))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.Jobs, 1))
	for i, path := range paths {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			flog := logger.With("file", path)
			tree, res, err := fixture.LoadFile(path, builder.WithLogger(flog))
			if err != nil {
				return err
			}
			u := &unit{path: path, tree: tree, res: res}
			for _, st := range stages {
				if err := st(u, cfg, flog); err != nil {
					return err
				}
			}
			units[i] = u
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

// foldRanges evaluates compile-time range bounds against the configured
// constants. Bounds that do not fold are left for the checker to report.
func foldRanges(u *unit, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.FoldRanges {
		return nil
	}
	if err := consteval.FoldRanges(u.tree, consteval.LiteralEvaluator{Env: cfg.Constants}); err != nil {
		logger.Debug("range bounds left unevaluated", "err", err)
	}
	return nil
}

func transform(u *unit, cfg *config.Config, logger *slog.Logger) error {
	opt := resolver.WithLogger(logger)
	switch cfg.Transform {
	case config.TransformDCE:
		u.tree, u.res = deadcode.Eliminate(u.tree, cfg.DropBindings, opt)
	case config.TransformSimplify:
		u.tree, u.res = simplifier.Simplify(u.tree, opt)
	case config.TransformAll:
		u.tree, u.res = deadcode.Eliminate(u.tree, cfg.DropBindings, opt)
		u.tree, u.res = simplifier.Simplify(u.tree, opt)
	}
	return nil
}

func check(u *unit, cfg *config.Config, logger *slog.Logger) error {
	sev, err := checker.ParseSeverity(cfg.ContinueInSwitch)
	if err != nil {
		return err
	}
	u.diags = checker.Check(u.tree, u.res, checker.Options{
		ContinueInSwitch:    sev,
		ReportUnreachable:   cfg.ReportUnreachable,
		RequireFoldedRanges: cfg.FoldRanges,
		Logger:              logger,
	})
	return nil
}
