package extensions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/a14e/mydi"
)

// maxTreeDepth caps requirement-tree rendering; deeper graphs are elided.
const maxTreeDepth = 6

// GraphDebugExtension logs a drawing of the dependency tree around the
// failing component when a build goes wrong.
//
// Usage:
//
//	// Human-readable formatted output (with line breaks)
//	handler := extensions.NewHumanHandler(os.Stdout, slog.LevelError)
//	ext := extensions.NewGraphDebugExtension(handler)
//
//	// Structured JSON logging (compact, machine-readable)
//	handler := slog.NewJSONHandler(os.Stdout, nil)
//	ext := extensions.NewGraphDebugExtension(handler)
//
//	// Silent (for testing)
//	ext := extensions.NewGraphDebugExtension(extensions.NewSilentHandler())
//
//	b := mydi.NewBinder(mydi.WithExtension(ext))
type GraphDebugExtension struct {
	mydi.BaseExtension

	binder   *mydi.Binder
	resolved map[mydi.TypeKey]bool
	failed   map[mydi.TypeKey]error
	logger   *slog.Logger
}

// NewGraphDebugExtension creates a new graph debug extension.
// logHandler: slog.Handler for logging (use HumanHandler for formatted
// output, or any other slog.Handler).
func NewGraphDebugExtension(logHandler slog.Handler) *GraphDebugExtension {
	return &GraphDebugExtension{
		BaseExtension: mydi.NewBaseExtension("graph-debug"),
		resolved:      make(map[mydi.TypeKey]bool),
		failed:        make(map[mydi.TypeKey]error),
		logger:        slog.New(logHandler),
	}
}

// Init remembers the binder so the requirement graph can be walked later.
func (e *GraphDebugExtension) Init(b *mydi.Binder) error {
	e.binder = b
	return nil
}

// Wrap tracks per-key build outcomes.
func (e *GraphDebugExtension) Wrap(next func() (any, error), op *mydi.Operation) (any, error) {
	result, err := next()

	if err == nil && op.Kind == mydi.OpResolve {
		e.resolved[op.Key] = true
	} else if err != nil && op.Kind == mydi.OpResolve {
		e.failed[op.Key] = err
	}

	return result, err
}

// OnError logs the requirement tree of the failing component.
func (e *GraphDebugExtension) OnError(err error, op *mydi.Operation) {
	e.logger.Error("dependency build error",
		"key", op.Key.Format(mydi.ShortNames),
		"origin", op.Origin,
		"error", err.Error(),
		"dependency_tree", e.drawFrom(op.Key),
	)
}

// OnBuildEnd logs an overview of the whole graph when the build failed for
// structural reasons (no single factory to blame).
func (e *GraphDebugExtension) OnBuildEnd(inj *mydi.Injector, err error) {
	if err == nil || len(e.failed) > 0 {
		return
	}
	e.logger.Error("container build failed",
		"error", err.Error(),
		"dependency_tree", e.drawAll(),
	)
}

// drawFrom renders the requirement subtree rooted at key.
func (e *GraphDebugExtension) drawFrom(key mydi.TypeKey) string {
	if e.binder == nil {
		return "(extension not installed on a binder)"
	}
	t := tree.NewTree(tree.NodeString(e.label(key)))
	seen := map[mydi.TypeKey]bool{key: true}
	e.addRequirements(t, key, seen, 1)
	return "\n" + t.String()
}

// drawAll renders every registration under a synthetic root.
func (e *GraphDebugExtension) drawAll() string {
	if e.binder == nil {
		return "(extension not installed on a binder)"
	}
	t := tree.NewTree(tree.NodeString("container"))
	for i, key := range e.binder.Keys() {
		t.AddChild(tree.NodeString(e.label(key)))
		child, err := t.Child(i)
		if err != nil {
			continue
		}
		e.addRequirements(child, key, map[mydi.TypeKey]bool{key: true}, 2)
	}
	return "\n" + t.String()
}

func (e *GraphDebugExtension) addRequirements(t *tree.Tree, key mydi.TypeKey, seen map[mydi.TypeKey]bool, depth int) {
	if depth >= maxTreeDepth {
		return
	}
	for i, req := range e.binder.Requirements(key) {
		label := e.label(req.Key)
		if req.Deferred {
			label += " (lazy)"
		}
		t.AddChild(tree.NodeString(label))
		if seen[req.Key] {
			continue
		}
		seen[req.Key] = true
		child, err := t.Child(i)
		if err != nil {
			continue
		}
		e.addRequirements(child, req.Key, seen, depth+1)
	}
}

func (e *GraphDebugExtension) label(key mydi.TypeKey) string {
	name := key.Format(mydi.ShortNames)
	if e.resolved[key] {
		return name + " ok"
	}
	if ferr, ok := e.failed[key]; ok {
		return fmt.Sprintf("%s FAILED: %v", name, ferr)
	}
	return name
}

// SilentHandler is a slog.Handler that discards all log output.
// Useful for testing when you don't want log output.
type SilentHandler struct{}

// NewSilentHandler creates a new silent log handler
func NewSilentHandler() *SilentHandler {
	return &SilentHandler{}
}

func (h *SilentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (h *SilentHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (h *SilentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *SilentHandler) WithGroup(name string) slog.Handler {
	return h
}

// HumanHandler is a slog.Handler that formats logs for human readability
// with proper line breaks, especially for dependency tree drawings.
type HumanHandler struct {
	writer io.Writer
	level  slog.Level
}

// NewHumanHandler creates a new human-readable log handler
func NewHumanHandler(writer io.Writer, level slog.Level) *HumanHandler {
	return &HumanHandler{
		writer: writer,
		level:  level,
	}
}

func (h *HumanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *HumanHandler) Handle(ctx context.Context, record slog.Record) error {
	switch record.Message {
	case "dependency build error":
		return h.handleBuildError(record, "Dependency Build Error")
	case "container build failed":
		return h.handleBuildError(record, "Container Build Failed")
	}

	if _, err := fmt.Fprintf(h.writer, "[%s] %s\n", record.Level, record.Message); err != nil {
		return err
	}
	var writeErr error
	record.Attrs(func(a slog.Attr) bool {
		if _, err := fmt.Fprintf(h.writer, "  %s: %v\n", a.Key, a.Value); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

func (h *HumanHandler) handleBuildError(record slog.Record, title string) error {
	var key, origin, errorMsg, dependencyTree string

	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "key":
			key = a.Value.String()
		case "origin":
			origin = a.Value.String()
		case "error":
			errorMsg = a.Value.String()
		case "dependency_tree":
			dependencyTree = a.Value.String()
		}
		return true
	})

	writes := []func() error{
		func() error { _, err := fmt.Fprintln(h.writer); return err },
		func() error { _, err := fmt.Fprintln(h.writer, strings.Repeat("=", 70)); return err },
		func() error { _, err := fmt.Fprintln(h.writer, "[GraphDebug] "+title); return err },
		func() error { _, err := fmt.Fprintln(h.writer, strings.Repeat("=", 70)); return err },
	}
	if key != "" {
		writes = append(writes, func() error {
			_, err := fmt.Fprintf(h.writer, "\nFailed Key: %s\n", key)
			return err
		})
	}
	if origin != "" {
		writes = append(writes, func() error {
			_, err := fmt.Fprintf(h.writer, "Registered At: %s\n", origin)
			return err
		})
	}
	writes = append(writes,
		func() error { _, err := fmt.Fprintf(h.writer, "Error: %s\n", errorMsg); return err },
		func() error { _, err := fmt.Fprintf(h.writer, "\nDependency Tree:%s\n", dependencyTree); return err },
		func() error { _, err := fmt.Fprintln(h.writer, strings.Repeat("=", 70)); return err },
		func() error { _, err := fmt.Fprintln(h.writer); return err },
	)

	for _, write := range writes {
		if err := write(); err != nil {
			return err
		}
	}

	return nil
}

func (h *HumanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *HumanHandler) WithGroup(name string) slog.Handler {
	return h
}
