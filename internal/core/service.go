package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lanelevesque/IGDB-Data-Upsert/internal/config"
)

// Fetcher retrieves the latest dump for an entity into the download
// directory. It is a collaborator contract; the engine treats its failures
// as non-fatal and falls back to whatever payload is already on disk.
type Fetcher interface {
	Fetch(ctx context.Context, entity string) error
}

// Service runs the import pipeline: fetch (optional), load, validate, upsert,
// strictly one entity at a time. Each entity commits before the next starts,
// so a store failure on entity N leaves entities 1..N-1 durable.
type Service struct {
	pool      *pgxpool.Pool
	registry  *Registry
	fetcher   Fetcher
	validator *Validator
	writer    *Writer
	dumpDir   string
	logger    *slog.Logger
}

// NewService wires the pipeline. fetcher may be nil when dumps are already
// on disk (RunOptions.Fetch is then ignored).
func NewService(pool *pgxpool.Pool, registry *Registry, fetcher Fetcher, cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		pool:      pool,
		registry:  registry,
		fetcher:   fetcher,
		validator: NewValidator(logger),
		writer:    NewWriter(cfg.Import.BatchSize, logger),
		dumpDir:   cfg.Paths.DownloadDir,
		logger:    logger,
	}
}

// RunOptions selects what a single import run does.
type RunOptions struct {
	// Fetch downloads fresh dumps before validating. Retrieval failures are
	// logged and the run proceeds on the existing files.
	Fetch bool

	// Entities restricts the run to a subset; empty means all registered
	// entities in processing order.
	Entities []string
}

// EntityResult summarizes one entity's pass through the pipeline.
type EntityResult struct {
	Entity   string
	Valid    int
	Invalid  int
	Affected int64
	Duration time.Duration
}

// RunSummary collects the per-entity results of a run.
type RunSummary struct {
	Entities []EntityResult
}

// Run executes the pipeline. It returns the summary of everything completed
// so far together with the first store failure, if any; per-record problems
// never surface here.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunSummary, error) {
	defs, err := s.selectEntities(opts.Entities)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{}
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := s.runEntity(ctx, def, opts.Fetch)
		if res != nil {
			summary.Entities = append(summary.Entities, *res)
		}
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (s *Service) runEntity(ctx context.Context, def *EntityDefinition, fetch bool) (*EntityResult, error) {
	start := time.Now()

	if fetch && s.fetcher != nil {
		if err := s.fetcher.Fetch(ctx, def.Name); err != nil {
			s.logger.Error("dump retrieval failed, using existing payload",
				"entity", def.Name, "error", err)
		}
	}

	path := filepath.Join(s.dumpDir, def.Name+".csv")
	records, err := LoadDump(path)
	if err != nil {
		// No payload at all for this entity; nothing to merge, the run
		// continues with the next entity.
		s.logger.Error("no usable dump payload, skipping entity",
			"entity", def.Name, "path", path, "error", err)
		return nil, nil
	}
	s.logger.Info("dump loaded", "entity", def.Name, "records", len(records))

	result := s.validator.Validate(def, records)

	affected, err := s.upsertEntity(ctx, def, result.Valid)
	if err != nil {
		return nil, fmt.Errorf("entity %s: %w", def.Name, err)
	}

	return &EntityResult{
		Entity:   def.Name,
		Valid:    result.ValidCount(),
		Invalid:  result.Invalid,
		Affected: affected,
		Duration: time.Since(start),
	}, nil
}

// upsertEntity wraps one entity's merge in its own transaction; the commit
// is the entity's durability point.
func (s *Service) upsertEntity(ctx context.Context, def *EntityDefinition, records []ParsedRecord) (int64, error) {
	if len(records) == 0 {
		s.logger.Info("no accepted records to merge", "entity", def.Name)
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	affected, err := s.writer.Upsert(ctx, tx, def, records)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return affected, nil
}

func (s *Service) selectEntities(names []string) ([]*EntityDefinition, error) {
	if len(names) == 0 {
		return s.registry.All(), nil
	}
	defs := make([]*EntityDefinition, 0, len(names))
	for _, name := range names {
		def, ok := s.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown entity %q (known: %v)", name, s.registry.Names())
		}
		defs = append(defs, def)
	}
	return defs, nil
}
