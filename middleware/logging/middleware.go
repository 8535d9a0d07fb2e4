package logging

import (
	"log/slog"
	"time"

	"github.com/RobertWHurst/harrier"
)

const startedAtKey = "logging.startedAt"

type transformer struct {
	logger *slog.Logger
}

// Middleware creates a transformer that logs every navigation passing
// through it once the rest of the chain has run: failures at error level,
// navigations no handler finished at warn level, and the rest at info
// level. A nil logger means slog.Default().
//
// Register it first so that it sees the whole chain:
//
//	router.Use(logging.Middleware(logger))
func Middleware(logger *slog.Logger) harrier.Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &transformer{logger: logger}
}

func (t *transformer) TransformRequest(ctx *harrier.Context) {
	ctx.Set(startedAtKey, time.Now())
}

func (t *transformer) TransformResponse(ctx *harrier.Context) {
	attrs := []any{
		"id", ctx.Request.ID,
		"method", ctx.Method(),
		"path", ctx.Path(),
		"url", ctx.Request.OriginalURL,
	}
	if startedAt, ok := ctx.Get(startedAtKey); ok {
		attrs = append(attrs, "duration", time.Since(startedAt.(time.Time)))
	}

	switch {
	case ctx.Error != nil:
		t.logger.Error("navigation failed", append(attrs, "error", ctx.Error)...)
	case ctx.Unhandled():
		t.logger.Warn("navigation unhandled", attrs...)
	default:
		t.logger.Info("navigation handled", attrs...)
	}
}
