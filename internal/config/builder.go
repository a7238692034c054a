package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the number of replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithBufferSize sets the work queue capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.BufferSize = n
	return b
}

// WithStartFEN sets the default starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStopOnError stops a batch run at the first game with an illegal move.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}

// WithInteractive enables the interactive prompt.
func (b *ConfigBuilder) WithInteractive(enabled bool) *ConfigBuilder {
	b.cfg.Interactive = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
