// Package runner is the batch driver. It discovers input files and processes
// them with bounded parallelism, one worker per file. Files are fully
// independent: every worker parses its own configuration, builds its own curve
// and writes its own output file, so no cross-file ordering is guaranteed or
// needed. Within one file, results are emitted in input order.
package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/smartcontractkit/eccalc/internal/metrics"
	"github.com/smartcontractkit/eccalc/internal/task"
)

type Config struct {
	// InputDir is scanned for *.txt task files.
	InputDir string

	// OutputDir receives one result file per input file, under the same base
	// name. Created if missing.
	OutputDir string

	// Workers bounds the number of files processed concurrently.
	// Zero or below uses one worker per CPU.
	Workers int

	Log logrus.FieldLogger

	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Set
}

// Run processes every task file in the input directory. A failing file aborts
// only itself: sibling workers keep running since they share no state, and
// Run reports the first error after all workers have finished.
func Run(cfg Config) error {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	files, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.txt"))
	if err != nil {
		return errors.Wrap(err, "listing input files")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	cfg.Log.WithFields(logrus.Fields{"files": len(files), "workers": workers}).Debug("starting batch")

	p := pool.New().WithErrors().WithFirstError().WithMaxGoroutines(workers)
	for _, file := range files {
		p.Go(func() error {
			if err := runFile(cfg, file); err != nil {
				if cfg.Metrics != nil {
					cfg.Metrics.FilesFailed.Inc()
				}
				cfg.Log.WithField("file", file).WithError(err).Error("file failed")
				return errors.Wrapf(err, "processing %s", file)
			}
			return nil
		})
	}
	return p.Wait()
}

func runFile(cfg Config, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	job, err := task.Parse(in)
	if err != nil {
		return err
	}
	lines, err := job.Run()
	if err != nil {
		return err
	}

	out := filepath.Join(cfg.OutputDir, filepath.Base(path))
	if err := os.WriteFile(out, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return errors.Wrap(err, "writing results")
	}

	if cfg.Metrics != nil {
		cfg.Metrics.FilesProcessed.Inc()
		cfg.Metrics.TasksComputed.Add(float64(job.Len()))
	}
	cfg.Log.WithFields(logrus.Fields{"file": filepath.Base(path), "tasks": job.Len()}).Info("file processed")
	return nil
}
