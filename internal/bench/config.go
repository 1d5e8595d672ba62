package bench

// Default benchmark values.
const (
	DefaultIterations = 10000
	DefaultMessage    = "Hello, world!"
)

// Config controls a benchmark run.
type Config struct {
	// Iterations is the number of calls made in every phase.
	Iterations uint32

	// Message is signed and verified by the last two phases.
	Message []byte
}

// NewDefaultConfig returns a Config with the default iteration count and
// message.
func NewDefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Message:    []byte(DefaultMessage),
	}
}
