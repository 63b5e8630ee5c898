package adapters

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/jt/pkg/filesystem"
)

// NewProductionContext binds the ports to the real process
func NewProductionContext() *Context {
	return &Context{
		FS:  filesystem.NewOS(),
		Env: osEnvironment{},
		Out: &stdOutput{out: os.Stdout, err: os.Stderr, file: os.Stdout},
		In:  &stdInput{file: os.Stdin},
	}
}

type osEnvironment struct{}

func (osEnvironment) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Set(key, value string) error {
	return os.Setenv(key, value)
}

type stdOutput struct {
	out  io.Writer
	err  io.Writer
	file *os.File
}

func (o *stdOutput) Log(text string) {
	fmt.Fprintln(o.out, text)
}

func (o *stdOutput) Error(text string) {
	fmt.Fprintln(o.err, text)
}

func (o *stdOutput) Exit(code int) {
	os.Exit(code)
}

func (o *stdOutput) IsTerminal() bool {
	fd := o.file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.NewOutput(o.file).Profile != termenv.Ascii
}

type stdInput struct {
	file *os.File
}

func (i *stdInput) ReadAll() (string, error) {
	data, err := io.ReadAll(i.file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (i *stdInput) IsInteractive() bool {
	fd := i.file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
