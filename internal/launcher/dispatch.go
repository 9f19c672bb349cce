package launcher

import (
	"context"
	"errors"
	"go/token"

	"github.com/coordination-oru/demolauncher/internal/registry"
	"github.com/coordination-oru/demolauncher/internal/runtime"
	pkgerrors "github.com/pkg/errors"
)

// Dispatcher resolves demo names under a namespace and invokes them.
type Dispatcher struct {
	Registry  *registry.Registry
	Namespace string
}

// Dispatch resolves req.EntryName, checks its entry point and runs it
// synchronously with req.Args. It returns nil or a *DispatchError.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	name := registry.Qualify(d.Namespace, req.EntryName)

	desc, ok := d.Registry.Lookup(name)
	if !ok {
		return fail(OutcomeEntryNotFound, req.EntryName,
			pkgerrors.Wrapf(ErrEntryNotFound, "no demo registered as %s", name))
	}

	ep, err := runtime.Resolve(desc.Main)
	if errors.Is(err, runtime.ErrNoEntryPoint) {
		return fail(OutcomeEntryPointMissing, req.EntryName,
			pkgerrors.Wrapf(err, "%s", name))
	}

	if !token.IsExported(registry.SimpleName(name)) {
		return fail(OutcomeAccessDenied, req.EntryName,
			pkgerrors.Wrapf(ErrAccessDenied, "%s is not exported", name))
	}

	if err != nil {
		return fail(OutcomeArgumentMismatch, req.EntryName,
			pkgerrors.Wrapf(err, "%s", name))
	}

	if err := runtime.Invoke(ctx, ep, req.Args); err != nil {
		return fail(OutcomeInvocationFailure, req.EntryName,
			pkgerrors.WithStack(err))
	}
	return nil
}

func fail(outcome Outcome, entry string, err error) error {
	return &DispatchError{Outcome: outcome, Entry: entry, Err: err}
}
