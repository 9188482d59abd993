// Package codegen turns a compiled schema and its layout plan into Go
// source: record declarations, record definitions, and the per-type
// parser functions described by spec.md section 4.4.
package codegen

// Logger receives progress and warning messages from Generate. It is
// implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Config holds the settings that shape generated output.
type Config struct {
	logger Logger

	// OutDir receives the four generated source files.
	OutDir string

	// Whitelist restricts emitted members; nil or empty means emit
	// everything (spec.md section 4.5).
	Whitelist Whitelist

	// IgnoreUnknown suppresses the warnings for whitelist entries that
	// name an unknown type or member. Generated parsers warn on unknown
	// attribute and child names regardless of this setting.
	IgnoreUnknown bool

	// UseGLM replaces the Vec2/Vec3/Quaternion record definitions
	// with aliases into gentests/glmcompat (spec.md section 6).
	UseGLM bool

	// PackageName names the generated Go package. Defaults to
	// "zusi" if empty.
	PackageName string
}

// An Option configures a Config.
type Option func(*Config)

// ErrorLog sets the Logger that receives warnings during generation.
func ErrorLog(l Logger) Option {
	return func(cfg *Config) { cfg.logger = l }
}

// OutDir sets the output directory for the four generated artefacts.
func OutDir(dir string) Option {
	return func(cfg *Config) { cfg.OutDir = dir }
}

// IgnoreUnknown suppresses warnings for unknown names.
func IgnoreUnknown(ignore bool) Option {
	return func(cfg *Config) { cfg.IgnoreUnknown = ignore }
}

// UseGLM enables the external-vector-library record aliases.
func UseGLM(use bool) Option {
	return func(cfg *Config) { cfg.UseGLM = use }
}

// PackageName sets the generated package's name.
func PackageName(name string) Option {
	return func(cfg *Config) { cfg.PackageName = name }
}

// WithWhitelist installs a pre-built whitelist gate.
func WithWhitelist(w Whitelist) Option {
	return func(cfg *Config) { cfg.Whitelist = w }
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil {
		cfg.logger.Printf(format, v...)
	} else {
		nopLogger{}.Printf(format, v...)
	}
}

// NewConfig builds a Config with the given options applied over
// sensible defaults.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{PackageName: "zusi"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
