package bench

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/panjf2000/ants"

	"github.com/leengari/recstore/internal/config"
	"github.com/leengari/recstore/internal/domain/data"
	"github.com/leengari/recstore/internal/domain/schema"
	"github.com/leengari/recstore/internal/engine"
)

// baseKey gives the benchmark records student-id shaped keys.
const baseKey = 906659671

// Result holds one timed benchmark phase.
type Result struct {
	Phase   string
	Ops     int
	Elapsed time.Duration
}

// GradesSchema builds the benchmark table's schema: columns integer
// columns with the key at ordinal keyColumn.
func GradesSchema(columns, keyColumn int) (*schema.Schema, error) {
	cols := make([]schema.Column, columns)
	for i := range cols {
		name := fmt.Sprintf("grade_%d", i)
		if i == keyColumn {
			name = "student_id"
		}
		cols[i] = schema.Column{Name: name, Type: schema.ColumnTypeInt}
	}
	return schema.New(cols, keyColumn)
}

// Run executes the fixed benchmark against one fresh engine instance:
// insert, update, select, batched sum, then delete, over cfg.Records
// records. Phase timings are returned in order.
func Run(cfg config.Config, logger *slog.Logger) ([]Result, error) {
	eng := engine.New()
	eng.AddObserver(engine.NewLoggingObserver())

	sch, err := GradesSchema(cfg.Columns, cfg.KeyColumn)
	if err != nil {
		return nil, err
	}

	table, err := eng.CreateTable("Grades", sch)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	keys := make([]int64, cfg.Records)
	results := make([]Result, 0, 5)

	// Insert
	start := time.Now()
	for i := 0; i < cfg.Records; i++ {
		key := int64(baseKey + i)
		keys[i] = key
		rec := make(data.Record, cfg.Columns)
		for c := range rec {
			rec[c] = int64(rng.Intn(100))
		}
		rec[cfg.KeyColumn] = key
		if err := table.Insert(rec); err != nil {
			return nil, fmt.Errorf("insert failed: %w", err)
		}
	}
	results = append(results, phase(logger, "insert", cfg.Records, start))

	// Update a random non-key column of a random record, Records times.
	start = time.Now()
	for i := 0; i < cfg.Records; i++ {
		key := keys[rng.Intn(len(keys))]
		rec, err := table.Select(key)
		if err != nil {
			return nil, fmt.Errorf("update lookup failed: %w", err)
		}
		col := rng.Intn(cfg.Columns)
		if col == cfg.KeyColumn {
			col = (col + 1) % cfg.Columns
		}
		rec[col] = int64(rng.Intn(100))
		if err := table.Update(key, rec); err != nil {
			return nil, fmt.Errorf("update failed: %w", err)
		}
	}
	results = append(results, phase(logger, "update", cfg.Records, start))

	// Select
	start = time.Now()
	for i := 0; i < cfg.Records; i++ {
		if _, err := table.Select(keys[rng.Intn(len(keys))]); err != nil {
			return nil, fmt.Errorf("select failed: %w", err)
		}
	}
	results = append(results, phase(logger, "select", cfg.Records, start))

	// Batched sum over the first non-key column.
	sumCol := 0
	if sumCol == cfg.KeyColumn && cfg.Columns > 1 {
		sumCol = 1
	}
	start = time.Now()
	sums, err := table.AggregateBatches(sch.Columns[sumCol].Name, engine.Sum, cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("aggregate failed: %w", err)
	}
	results = append(results, phase(logger, "batch_sum", len(sums), start))

	// Delete
	start = time.Now()
	for _, key := range keys {
		if err := table.Delete(key); err != nil {
			return nil, fmt.Errorf("delete failed: %w", err)
		}
	}
	results = append(results, phase(logger, "delete", cfg.Records, start))

	if err := eng.DropTable("Grades"); err != nil {
		return nil, err
	}

	return results, nil
}

// RunParallel runs cfg.Workers independent benchmark runs concurrently,
// one engine instance per worker. The single-writer ownership model
// holds because no two workers share a table.
func RunParallel(cfg config.Config, logger *slog.Logger) error {
	if cfg.Workers == 1 {
		_, err := Run(cfg, logger)
		return err
	}

	workerPool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer workerPool.Release()

	var wg sync.WaitGroup
	errs := make([]error, cfg.Workers)

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		worker := w
		task := func() {
			defer wg.Done()
			_, errs[worker] = Run(cfg, logger.With("worker", worker))
		}
		if err := workerPool.Submit(task); err != nil {
			wg.Done()
			errs[worker] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func phase(logger *slog.Logger, name string, ops int, start time.Time) Result {
	elapsed := time.Since(start)
	logger.Info("benchmark phase complete",
		"phase", name,
		"ops", ops,
		"elapsed", elapsed,
	)
	return Result{Phase: name, Ops: ops, Elapsed: elapsed}
}
