// Package program embeds the per-unit script runtime. Each unit owns one
// compiled program and one isolated interpreter; the only channel between a
// script and the simulation is the UnitHandle passed to its entry point.
package program

import (
	"sync"

	"github.com/dop251/goja"
	bettererrors "github.com/xtuc/better-errors"
)

// EntryPointName is the well-known global function a program may define to
// receive per-tick invocation. Its absence is tolerated.
const EntryPointName = "on_tick"

// UnitProgram owns the source of one unit's program and the live
// interpreter it runs in. The interpreter is exclusively owned by its unit;
// the mutex guards against re-entrant or concurrent invocation, which the
// design does not support.
type UnitProgram struct {
	mu      sync.Mutex
	program []byte
	vm      *goja.Runtime
}

// NewUnitProgram constructs a runtime from program bytes. The program's top
// level is executed once; a compile or execution error fails the
// construction and no runtime is returned, so a unit can never carry a
// partially-initialized program.
func NewUnitProgram(source []byte) (*UnitProgram, error) {
	vm, err := newVM(source)
	if err != nil {
		return nil, err
	}

	stored := make([]byte, len(source))
	copy(stored, source)

	return &UnitProgram{
		program: stored,
		vm:      vm,
	}, nil
}

func newVM(source []byte) (*goja.Runtime, error) {
	vm := goja.New()

	if len(source) > 0 {
		if _, err := vm.RunScript("unit-program", string(source)); err != nil {
			return nil, bettererrors.
				New("Program failed to load").
				With(bettererrors.NewFromErr(err))
		}
	}

	return vm, nil
}

// Program returns the stored program bytes.
func (up *UnitProgram) Program() []byte {
	up.mu.Lock()
	defer up.mu.Unlock()
	return up.program
}

// Reload replaces the interpreter with a fresh one initialized from the new
// program bytes. The old interpreter is discarded wholesale; no global state
// survives a reload. On error the previous interpreter stays in place.
func (up *UnitProgram) Reload(source []byte) error {
	vm, err := newVM(source)
	if err != nil {
		return err
	}

	stored := make([]byte, len(source))
	copy(stored, source)

	up.mu.Lock()
	up.program = stored
	up.vm = vm
	up.mu.Unlock()

	return nil
}

// Tick invokes the program's entry point with the handle as its only
// argument. A program that defines no entry point is a no-op; one that binds
// the entry point name to a non-function value is an error. The handle is
// revoked before Tick returns, whatever the outcome: a script that stashed
// it somewhere holds a dead reference. A thrown script error is returned for
// logging; mutations written before the throw stand (intent writes are plain
// field writes, not transactional).
func (up *UnitProgram) Tick(handle *UnitHandle) error {
	up.mu.Lock()
	defer up.mu.Unlock()

	defer handle.revoke()

	entryPoint := up.vm.Get(EntryPointName)
	if entryPoint == nil || goja.IsUndefined(entryPoint) || goja.IsNull(entryPoint) {
		return nil
	}

	onTick, ok := goja.AssertFunction(entryPoint)
	if !ok {
		return bettererrors.New("Program global \"" + EntryPointName + "\" is not a function")
	}

	_, err := onTick(goja.Undefined(), handle.bind(up.vm))

	return err
}
