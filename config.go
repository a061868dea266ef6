package pagebrief

// Defaults for the pipeline configuration. The chunk size matches the
// window the summarization backends handle comfortably in one call.
const (
	DefaultMaxChunkSize  = 6000
	DefaultOverlap       = 200
	DefaultMaxRetries    = 3
	DefaultConcurrency   = 4
	DefaultReduceCeiling = 8000
)

// Config is the tuning surface consumed by the pipeline. Invalid
// combinations fail at pipeline construction, never mid-run.
type Config struct {
	// MaxChunkSize bounds the size of each chunk in bytes.
	MaxChunkSize int `yaml:"max_chunk_size"`

	// Overlap is the number of bytes consecutive chunks share.
	// Must be smaller than MaxChunkSize.
	Overlap int `yaml:"overlap"`

	// MaxRetries is how many times a transient backend failure is retried
	// before the chunk is considered permanently failed.
	MaxRetries int `yaml:"max_retries"`

	// Concurrency caps the number of simultaneously outstanding backend
	// calls within one invocation.
	Concurrency int `yaml:"concurrency"`

	// ReduceCeiling bounds the concatenated partial summaries; above it a
	// second-level reduce call compresses the result. Measured in bytes,
	// or in tokens when the pipeline has a token counter.
	ReduceCeiling int `yaml:"reduce_ceiling"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:  DefaultMaxChunkSize,
		Overlap:       DefaultOverlap,
		MaxRetries:    DefaultMaxRetries,
		Concurrency:   DefaultConcurrency,
		ReduceCeiling: DefaultReduceCeiling,
	}
}

// Validate returns EINVALID if the configuration is unusable.
func (c Config) Validate() error {
	if c.MaxChunkSize <= 0 {
		return Errorf(EINVALID, "max chunk size must be positive, got %d", c.MaxChunkSize)
	}
	if c.Overlap < 0 || c.Overlap >= c.MaxChunkSize {
		return Errorf(EINVALID, "overlap must be in [0, %d), got %d", c.MaxChunkSize, c.Overlap)
	}
	if c.MaxRetries < 0 {
		return Errorf(EINVALID, "max retries must be non-negative, got %d", c.MaxRetries)
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.ReduceCeiling <= 0 {
		return Errorf(EINVALID, "reduce ceiling must be positive, got %d", c.ReduceCeiling)
	}
	return nil
}
