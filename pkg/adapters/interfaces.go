// Package adapters defines the ports through which jt touches its
// environment, along with a production binding and an in-memory double.
//
// No other package reads files, environment variables, stdin or stdout
// directly; they receive a *Context and go through it.
package adapters

// FileSystem reads input and config files
type FileSystem interface {
	// ReadFile returns the file contents. A missing file yields an error
	// matching fs.ErrNotExist.
	ReadFile(path string) (string, error)
	Exists(path string) bool
}

// Environment reads and writes environment variables
type Environment interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Output is where results, diagnostics and the exit status go
type Output interface {
	// Log writes a result block followed by a newline to the output stream
	Log(text string)
	// Error writes a diagnostic followed by a newline to the error stream
	Error(text string)
	Exit(code int)
	// IsTerminal reports whether the output stream is a color capable terminal
	IsTerminal() bool
}

// Input is standard input
type Input interface {
	// ReadAll drains standard input
	ReadAll() (string, error)
	// IsInteractive is true when nothing is piped in
	IsInteractive() bool
}

// Context bundles the four ports for one invocation
type Context struct {
	FS  FileSystem
	Env Environment
	Out Output
	In  Input
}

// Getenv returns the value of key, or "" when unset
func (c *Context) Getenv(key string) string {
	v, _ := c.Env.Get(key)
	return v
}
