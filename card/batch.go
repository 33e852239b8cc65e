package card

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job renders one source image to one output file.
type Job struct {
	Source string
	Output string
}

type Result struct {
	Job
	Bytes   int64
	Elapsed time.Duration
}

// JobsForDir creates a job for every decodable image in srcDir, writing
// <name>.png files into outDir. Jobs are sorted by source path.
func JobsForDir(srcDir, outDir string) ([]Job, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}
	var jobs []Job
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		jobs = append(jobs, Job{
			Source: filepath.Join(srcDir, e.Name()),
			Output: filepath.Join(outDir, base+".png"),
		})
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Source < jobs[j].Source
	})
	return jobs, nil
}

// RenderBatch renders jobs with at most workers running at once. The first
// failure cancels the remaining jobs. Results are returned in job order.
func RenderBatch(ctx context.Context, jobs []Job, g Geometry, s Style, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RenderJob(job, g, s)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RenderJob loads, renders and saves a single job.
func RenderJob(job Job, g Geometry, s Style) (Result, error) {
	start := time.Now()
	src, err := LoadImage(job.Source)
	if err != nil {
		return Result{}, err
	}
	if err := SavePNG(job.Output, Render(src, g, s)); err != nil {
		return Result{}, err
	}
	info, err := os.Stat(job.Output)
	if err != nil {
		return Result{}, fmt.Errorf("reading rendered file: %w", err)
	}
	res := Result{Job: job, Bytes: info.Size(), Elapsed: time.Since(start)}
	Logger().Debug("rendered batch job", "source", job.Source, "output", job.Output, "elapsed", res.Elapsed)
	return res, nil
}
