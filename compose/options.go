package compose

import (
	"log/slog"
	"os"
	"time"

	"github.com/voltserv/reportengine/subreport"
)

// Option is a functional option for configuring a Composer.
type Option func(*Composer)

// DefaultUploadsDir resolves the statutory-uploads directory the way the
// host deployment configures it: the UPLOADS_DIR environment variable,
// falling back to /app/uploads.
func DefaultUploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "/app/uploads"
}

// WithUploadsDir sets the directory statutory file_url paths resolve
// against. Defaults to DefaultUploadsDir.
func WithUploadsDir(dir string) Option {
	return func(c *Composer) {
		c.uploadsDir = dir
	}
}

// WithLogger sets the structured logger for build diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Composer) {
		c.log = log
	}
}

// WithClock overrides the issue-date clock, for reproducible output.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// WithSubreportRenderer substitutes the sibling-engine renderer. Without
// it the composer runs the built-in engines against its own store.
func WithSubreportRenderer(r subreport.Renderer) Option {
	return func(c *Composer) {
		c.sub = r
	}
}
