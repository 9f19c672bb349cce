package runtime

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrNoEntryPoint         = errors.New("no entry point")
	ErrUnsupportedSignature = errors.New("unsupported entry point signature")
)

// EntryPoint is a demo's invokable operation.
type EntryPoint interface {
	// Run executes the demo with the forwarded arguments. args may be nil.
	Run(ctx context.Context, args []string) error
}

// Supported calling conventions.
type (
	MainFunc        func(args []string)
	MainErrFunc     func(args []string) error
	MainContextFunc func(ctx context.Context, args []string) error
)

func (f MainFunc) Run(_ context.Context, args []string) error {
	f(args)
	return nil
}

func (f MainErrFunc) Run(_ context.Context, args []string) error {
	return f(args)
}

func (f MainContextFunc) Run(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// Resolve returns the EntryPoint for a registered main value. A nil value
// yields ErrNoEntryPoint; a value of any other shape yields
// ErrUnsupportedSignature.
func Resolve(main any) (EntryPoint, error) {
	switch fn := main.(type) {
	case nil:
		return nil, ErrNoEntryPoint
	case EntryPoint:
		return fn, nil
	case func([]string):
		return checkNil(MainFunc(fn), fn == nil)
	case func([]string) error:
		return checkNil(MainErrFunc(fn), fn == nil)
	case func(context.Context, []string) error:
		return checkNil(MainContextFunc(fn), fn == nil)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSignature, main)
	}
}

func checkNil(ep EntryPoint, isNil bool) (EntryPoint, error) {
	if isNil {
		return nil, ErrNoEntryPoint
	}
	return ep, nil
}

// PanicError reports a panic raised inside an entry point.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("entry point panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Invoke runs ep synchronously. A panic inside ep is recovered and returned
// as a *PanicError carrying the goroutine stack.
func Invoke(ctx context.Context, ep EntryPoint, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return ep.Run(ctx, args)
}
