package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// NewLogger creates the application logger. Component names are passed in the message
// itself, so the prefix is placed right before it.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	if prefix != "" {
		prefix += " "
	}
	return log.New(w, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"[libraryapp]"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(os.Stdout, il.Prefix))
	return ctx, nil
}
