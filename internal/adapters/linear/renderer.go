// Package linear provides a synchronous, line-buffered renderer for CI environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/ui/output"
	"go.trai.ch/memo/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for non-interactive output.
// Project spans print as "[core]", mojo spans as "[core compiler:compile]".
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	tasks map[string]*taskState
}

type taskState struct {
	label     string
	startTime time.Time
	pending   bytes.Buffer
}

// NewRenderer creates a new Renderer. Nil writers default to stdout and stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		tasks:  make(map[string]*taskState),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes partial lines of unfinished tasks.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		r.flushLocked(task)
	}
	return nil
}

// OnPlanEmit prints the planned projects.
func (r *Renderer) OnPlanEmit(projects []string, goals []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning to build %d project(s) for goal(s): %s\n",
		len(projects), strings.Join(goals, " "))
}

// OnTaskStart prints a start line.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := shortName(name)
	if parent, ok := r.tasks[parentID]; ok {
		label = parent.label + " " + name
	}
	r.tasks[spanID] = &taskState{label: label, startTime: startTime}

	prefix := r.output.String("[" + label + "]").Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnTaskLog prints complete lines with the task prefix and keeps the rest.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	task.pending.Write(data)
	for {
		i := bytes.IndexByte(task.pending.Bytes(), '\n')
		if i < 0 {
			return
		}
		line := task.pending.Next(i + 1)
		r.printLineLocked(task.label, line)
	}
}

// OnTaskComplete flushes remaining output and prints the outcome.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	r.flushLocked(task)
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime)
	prefix := "[" + task.label + "]"
	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.output.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(r.output.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}

// flushLocked prints a pending partial line; mu must be held.
func (r *Renderer) flushLocked(task *taskState) {
	if task.pending.Len() > 0 {
		r.printLineLocked(task.label, task.pending.Bytes())
		task.pending.Reset()
	}
}

// printLineLocked prints one line with the task prefix; mu must be held.
func (r *Renderer) printLineLocked(label string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", label, line)
}

// shortName drops the groupId of a project key.
func shortName(name string) string {
	if _, artifactID, ok := strings.Cut(name, ":"); ok && !strings.Contains(artifactID, ":") {
		return artifactID
	}
	return name
}
