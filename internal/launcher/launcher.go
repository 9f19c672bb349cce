package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coordination-oru/demolauncher/internal/catalog"
	"github.com/coordination-oru/demolauncher/internal/manifest"
	"github.com/coordination-oru/demolauncher/internal/runtime"
)

// Launcher ties the dispatcher to the catalog renderer and the
// diagnostic output.
type Launcher struct {
	Dispatcher Dispatcher
	Manifest   *manifest.Manifest
	Stdout     io.Writer // catalog output
	Stderr     io.Writer // failure traces
	Logger     *log.Logger

	// StrictExit makes Run return dispatch failures after reporting them.
	StrictExit bool
}

// Run handles one invocation. An accepted argument shape is dispatched;
// any other shape renders the catalog. A failed dispatch is reported and
// swallowed unless StrictExit is set.
func (l *Launcher) Run(ctx context.Context, args []string) error {
	req, ok := Shape(args)
	if !ok {
		l.Logger.Debug("rendering catalog", "args", len(args))
		l.RenderCatalog()
		return nil
	}

	l.Logger.Debug("dispatching", "entry", req.EntryName, "forwarded", len(req.Args))
	err := l.Dispatcher.Dispatch(ctx, req)
	if err == nil {
		return nil
	}

	l.report(err)
	if l.StrictExit {
		return err
	}
	return nil
}

// RenderCatalog scans the namespace and writes the catalog to Stdout.
func (l *Launcher) RenderCatalog() {
	entries := l.Dispatcher.Registry.Scan(l.Dispatcher.Namespace)
	catalog.Render(l.Stdout, catalog.New(entries), l.Manifest)
}

// report logs a dispatch failure and writes its trace to Stderr.
func (l *Launcher) report(err error) {
	var de *DispatchError
	if !errors.As(err, &de) {
		l.Logger.Error("dispatch failed", "err", err)
		fmt.Fprintf(l.Stderr, "%+v\n", err)
		return
	}

	l.Logger.Error("dispatch failed", "entry", de.Entry, "outcome", de.Outcome.String(), "err", de.Err)
	fmt.Fprintf(l.Stderr, "%+v\n", de.Err)

	var pe *runtime.PanicError
	if errors.As(de.Err, &pe) {
		fmt.Fprintf(l.Stderr, "%s\n", pe.Stack)
	}
}
