// Package batch renders turntable frames of the primitives with a worker pool.
package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"

	"solidview/internal/geometry"
	"solidview/internal/mathutil"
	"solidview/internal/output"
	"solidview/internal/raster"
	"solidview/internal/viewer"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Frames      int
	PitchDeg    float32
	Format      output.Format
	Workers     int
	Params      geometry.Params
	Logger      *slog.Logger

	// ProgressEvery is the progress log interval. Zero means 2s.
	ProgressEvery time.Duration
}

// Job is one frame of one primitive.
type Job struct {
	Kind  geometry.Kind
	Frame int
	Yaw   float32 // radians
}

// Result holds the outcome of rendering one job.
type Result struct {
	Kind    geometry.Kind
	Frame   int
	YawDeg  float32
	Path    string // relative to OutputDir
	Success bool
	Error   string
}

// Jobs lists every frame of every kind, kind-major. Frames are evenly spaced
// over a full turn.
func Jobs(kinds []geometry.Kind, frames int) []Job {
	frames = max(frames, 1)
	step := 2 * math32.Pi / float32(frames)
	jobs := make([]Job, 0, len(kinds)*frames)
	for _, k := range kinds {
		for f := 0; f < frames; f++ {
			jobs = append(jobs, Job{Kind: k, Frame: f, Yaw: float32(f) * step})
		}
	}
	return jobs
}

// RelPath is where a job's image goes, relative to the output directory.
func RelPath(j Job, f output.Format) string {
	return filepath.Join(j.Kind.String(), fmt.Sprintf("%03d%s", j.Frame, f.Ext()))
}

// Run renders all jobs using a worker pool. Each worker owns its own session
// and renderer.
func Run(cfg Config, jobs []Job) []Result {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if cfg.Format == "" {
		cfg.Format = output.WebP
	}
	workers := max(cfg.Workers, 1)
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress",
						"done", p,
						"total", total,
						"frames_per_sec", fmt.Sprintf("%.1f", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool. Workers share built meshes; every session only reads them.
	meshes := geometry.NewCache()
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk := newWorker(cfg, log, meshes)
			for idx := range jobChan {
				results[idx] = wk.render(jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

type worker struct {
	cfg      Config
	log      *slog.Logger
	renderer *raster.Renderer
	session  *viewer.Session
	err      error
}

func newWorker(cfg Config, log *slog.Logger, meshes geometry.Source) *worker {
	wk := &worker{cfg: cfg, log: log, renderer: raster.New(cfg.Supersample)}
	wk.session, wk.err = viewer.New(wk.renderer, cfg.Width, cfg.Height, cfg.Params,
		viewer.WithLogger(log), viewer.WithMeshSource(meshes))
	return wk
}

func (wk *worker) render(j Job) Result {
	res := Result{
		Kind:   j.Kind,
		Frame:  j.Frame,
		YawDeg: j.Yaw / mathutil.Deg2Rad(1),
		Path:   RelPath(j, wk.cfg.Format),
	}
	if wk.err != nil {
		res.Error = wk.err.Error()
		return res
	}

	s := wk.session
	if s.Kind() != j.Kind {
		if err := s.SetKind(j.Kind); err != nil {
			res.Error = err.Error()
			return res
		}
	}
	s.Reset()
	s.Rotate(j.Yaw, mathutil.Deg2Rad(wk.cfg.PitchDeg))

	if err := s.Draw(); err != nil {
		res.Error = err.Error()
		return res
	}

	outPath := filepath.Join(wk.cfg.OutputDir, res.Path)
	if err := output.Save(outPath, wk.renderer.Image(), wk.cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	wk.log.Debug("frame saved", "primitive", j.Kind.String(), "frame", j.Frame, "path", outPath)

	res.Success = true
	return res
}
