package logic

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
	"toot_scheduler/shared"
)

const profilerStartDelay = 10 * time.Second
const profilerInterval = 60 * time.Second

// IProfiler periodically dumps goroutine stacks to the profile directory, if one is configured.
type IProfiler interface {
	Start()
	Stop()
}

type profiler struct {
	logger          shared.ILogger
	clock           shared.IClock
	profileDir      string
	profileKeepDays int
	mu              sync.Mutex
	timer           shared.ITimer
	stopped         bool
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger, clock shared.IClock) IProfiler {
	return &profiler{
		logger:          logger,
		clock:           clock,
		profileDir:      cfg.ProfileDir,
		profileKeepDays: cfg.ProfileKeepDays,
	}
}

func (prof *profiler) Start() {
	if prof.profileDir == "" {
		return
	}
	if err := os.MkdirAll(prof.profileDir, 0755); err != nil {
		prof.logger.Errorf("Profiler disabled; cannot create %s: %v", prof.profileDir, err)
		return
	}
	prof.logger.Infof("Saving goroutine profiles to %s", prof.profileDir)
	prof.schedule(profilerStartDelay)
}

func (prof *profiler) Stop() {
	prof.mu.Lock()
	defer prof.mu.Unlock()
	prof.stopped = true
	if prof.timer != nil {
		prof.timer.Stop()
		prof.timer = nil
	}
}

func (prof *profiler) schedule(delay time.Duration) {
	prof.mu.Lock()
	defer prof.mu.Unlock()
	if prof.stopped {
		return
	}
	prof.timer = prof.clock.AfterFunc(delay, prof.tick)
}

func (prof *profiler) tick() {
	if err := prof.saveProfileAndPurgeOld(); err != nil {
		prof.logger.Warnf("Failed to save goroutine profile: %v", err)
	}
	prof.schedule(profilerInterval)
}

func saveProfile(profileDir string, now time.Time) error {
	ts := now.Format("2006-01-02!15-04-05")
	fname := fmt.Sprintf("%v.txt", ts)
	profPath := filepath.Join(profileDir, fname)
	f, err := os.Create(profPath)
	if err != nil {
		return err
	}
	defer f.Close()

	numGoroutine := runtime.NumGoroutine()
	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", numGoroutine); err != nil {
		return err
	}

	if err = pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		return err
	}
	return nil
}

func purgeOld(profileDir string, cutoff time.Time) error {
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) saveProfileAndPurgeOld() error {
	now := prof.clock.Now()
	if err := saveProfile(prof.profileDir, now); err != nil {
		return err
	}
	return purgeOld(prof.profileDir, now.AddDate(0, 0, -prof.profileKeepDays))
}
