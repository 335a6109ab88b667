// Package hooks runs user scripts after a note change is stored.
//
// Scripts live in one directory per hook point, e.g. hooks/post-create/,
// and run in name order. Only executable files are considered.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/logging"
)

// Hook points.
const (
	PostCreate  = "post-create"
	PostUpdate  = "post-update"
	PostDelete  = "post-delete"
	PostArchive = "post-archive"
	PostRestore = "post-restore"
)

// Points lists every hook point.
var Points = []string{PostCreate, PostUpdate, PostDelete, PostArchive, PostRestore}

// FailureMode decides what a failing script does to Run.
type FailureMode string

const (
	// ModeWarn logs the failure, runs the remaining scripts and returns an error.
	ModeWarn FailureMode = "warn"
	// ModeIgnore logs at debug level and returns nil.
	ModeIgnore FailureMode = "ignore"
)

const defaultTimeout = 10 * time.Second

// Runner executes the scripts of a hooks directory.
type Runner struct {
	dir     string
	mode    FailureMode
	timeout time.Duration
	log     logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFailureMode sets the failure mode. Unknown modes mean warn.
func WithFailureMode(mode FailureMode) Option {
	return func(r *Runner) {
		if mode == ModeIgnore {
			r.mode = ModeIgnore
		}
	}
}

// WithTimeout bounds how long one script may run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger. Script output is logged at debug level.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// New returns a runner over dir.
func New(dir string, opts ...Option) *Runner {
	r := &Runner{dir: dir, mode: ModeWarn, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logging.GetGlobal()
	}
	return r
}

// NewFromConfig returns a runner configured by hooks_dir,
// hooks_failure_mode and hooks_timeout_seconds.
func NewFromConfig() *Runner {
	return New(Dir(),
		WithFailureMode(FailureMode(config.Get("hooks_failure_mode", string(ModeWarn)))),
		WithTimeout(time.Duration(config.GetInt("hooks_timeout_seconds", 10))*time.Second),
		WithLogger(logging.With("component", "hooks")),
	)
}

// Dir returns the configured hooks directory, config_dir/hooks by default.
func Dir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	if dir := config.Get("config_dir", ""); dir != "" {
		return filepath.Join(dir, "hooks")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notedeck", "hooks")
}

// Dir returns the hooks directory of r.
func (r *Runner) Dir() string { return r.dir }

// Scripts returns the executable scripts of point in run order.
func (r *Runner) Scripts(point string) []string {
	entries, err := os.ReadDir(filepath.Join(r.dir, point))
	if err != nil {
		return nil
	}
	var scripts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(r.dir, point, e.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes the scripts of point with env added to the process
// environment. A missing directory means no hooks.
func (r *Runner) Run(ctx context.Context, point string, env map[string]string) error {
	scripts := r.Scripts(point)
	if len(scripts) == 0 {
		return nil
	}
	environ := append(os.Environ(),
		"NOTEDECK_HOOK_POINT="+point,
		"NOTEDECK_HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
	)
	if exe, err := os.Executable(); err == nil {
		environ = append(environ, "NOTEDECK_BINARY="+exe)
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		environ = append(environ, k+"="+env[k])
	}

	r.log.Debug("running hooks", "point", point, "scripts", len(scripts))
	var errs []error
	for _, script := range scripts {
		if err := r.runScript(ctx, script, environ); err != nil {
			if r.mode == ModeIgnore {
				r.log.Debug("hook failed", "script", script, "error", err)
				continue
			}
			r.log.Warn("hook failed", "script", script, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) runScript(ctx context.Context, script string, environ []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = environ
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	duration := time.Since(start)
	if out.Len() > 0 {
		r.log.Debug("hook output", "script", filepath.Base(script), "output", strings.TrimSpace(out.String()))
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("hook %s timed out after %s", filepath.Base(script), r.timeout)
	}
	if err != nil {
		return fmt.Errorf("hook %s: %w", filepath.Base(script), err)
	}
	r.log.Debug("hook completed", "script", filepath.Base(script), "duration", duration)
	return nil
}

// NoteEnv returns the variables describing n to a script.
func NoteEnv(n domain.Note) map[string]string {
	return map[string]string{
		"NOTEDECK_NOTE_ID":       n.ID,
		"NOTEDECK_NOTE_OWNER":    n.OwnerID,
		"NOTEDECK_NOTE_TITLE":    n.Title,
		"NOTEDECK_NOTE_TAGS":     strings.Join(n.Tags, domain.TagSeparator),
		"NOTEDECK_NOTE_ARCHIVED": strconv.FormatBool(n.Archived),
		"NOTEDECK_NOTE_CREATED":  n.CreatedAt.Format(time.RFC3339),
	}
}
