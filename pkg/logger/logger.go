package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string    // development -> consola legible; otro -> JSON
	Level   string    // trace, debug, info, warn, error
	Service string    // se agrega como campo "service" si no está vacío
	Output  io.Writer // por defecto os.Stdout
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado y lo instala como logger global de zerolog.
func New(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop logger que descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component sublogger con el campo component fijo (wizard, inventory, http...).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
