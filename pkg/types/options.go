package types

// ColorMode is the tri-state color request coming from the command line
type ColorMode int

const (
	// ColorAuto leaves the decision to the environment and terminal
	ColorAuto ColorMode = iota
	// ColorForce was requested with --color
	ColorForce
	// ColorDisable was requested with --no-color
	ColorDisable
)

func (m ColorMode) String() string {
	switch m {
	case ColorForce:
		return "force"
	case ColorDisable:
		return "disable"
	default:
		return "auto"
	}
}

// Options is everything one invocation needs once input has been acquired.
// It is built once and passed by value.
type Options struct {
	// Query is the JSONata expression; empty means reformat only
	Query        string
	InputFormat  InputFormat
	OutputFormat OutputFormat
	// Input is the full raw input text
	Input     string
	Color     ColorMode
	Compact   bool
	RawString bool
	NoHeader  bool
}

// HasQuery reports whether a query should be evaluated
func (o Options) HasQuery() bool {
	return o.Query != ""
}
