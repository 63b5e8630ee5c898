package adapters

import (
	"github.com/arthur-debert/jt/pkg/filesystem"
)

// MemoryConfig seeds an in-memory context
type MemoryConfig struct {
	Files       map[string]string
	Env         map[string]string
	Stdin       string
	Interactive bool
	// Terminal is what Output.IsTerminal reports
	Terminal bool
}

// MemoryContext is a Context whose ports are all in memory, with typed
// access to each double for assertions.
type MemoryContext struct {
	*Context
	Files       *filesystem.AferoFS
	Environment *MemoryEnvironment
	Output      *MemoryOutput
	Input       *MemoryInput
}

// NewMemoryContext builds an isolated context from cfg
func NewMemoryContext(cfg MemoryConfig) (*MemoryContext, error) {
	files, err := filesystem.NewMemory(cfg.Files)
	if err != nil {
		return nil, err
	}
	env := NewMemoryEnvironment(cfg.Env)
	out := &MemoryOutput{Terminal: cfg.Terminal}
	in := &MemoryInput{Data: cfg.Stdin, Interactive: cfg.Interactive}

	return &MemoryContext{
		Context:     &Context{FS: files, Env: env, Out: out, In: in},
		Files:       files,
		Environment: env,
		Output:      out,
		Input:       in,
	}, nil
}

// MemoryEnvironment is a map backed Environment
type MemoryEnvironment struct {
	vars map[string]string
}

// NewMemoryEnvironment copies vars into a fresh environment
func NewMemoryEnvironment(vars map[string]string) *MemoryEnvironment {
	e := &MemoryEnvironment{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		e.vars[k] = v
	}
	return e
}

func (e *MemoryEnvironment) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

func (e *MemoryEnvironment) Set(key, value string) error {
	e.vars[key] = value
	return nil
}

// Delete removes key
func (e *MemoryEnvironment) Delete(key string) {
	delete(e.vars, key)
}

// All returns a copy of every variable
func (e *MemoryEnvironment) All() map[string]string {
	all := make(map[string]string, len(e.vars))
	for k, v := range e.vars {
		all[k] = v
	}
	return all
}

// MemoryOutput records everything written to it. Exit only records the
// code; the caller keeps running.
type MemoryOutput struct {
	Logs     []string
	Errors   []string
	Exited   bool
	ExitCode int
	Terminal bool
}

func (o *MemoryOutput) Log(text string) {
	o.Logs = append(o.Logs, text)
}

func (o *MemoryOutput) Error(text string) {
	o.Errors = append(o.Errors, text)
}

func (o *MemoryOutput) Exit(code int) {
	o.Exited = true
	o.ExitCode = code
}

func (o *MemoryOutput) IsTerminal() bool {
	return o.Terminal
}

// LastLog returns the most recent Log text, or "" if none
func (o *MemoryOutput) LastLog() string {
	if len(o.Logs) == 0 {
		return ""
	}
	return o.Logs[len(o.Logs)-1]
}

// LastError returns the most recent Error text, or "" if none
func (o *MemoryOutput) LastError() string {
	if len(o.Errors) == 0 {
		return ""
	}
	return o.Errors[len(o.Errors)-1]
}

// Clear forgets all recorded output
func (o *MemoryOutput) Clear() {
	o.Logs = nil
	o.Errors = nil
	o.Exited = false
	o.ExitCode = 0
}

// MemoryInput serves preset stdin data
type MemoryInput struct {
	Data        string
	Interactive bool
}

func (i *MemoryInput) ReadAll() (string, error) {
	return i.Data, nil
}

func (i *MemoryInput) IsInteractive() bool {
	return i.Interactive
}
