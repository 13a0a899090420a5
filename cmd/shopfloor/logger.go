package main

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	// Всегда пишем в основной вывод (stdout)
	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	// Если это ошибка, дублируем в файл. Сбой файла не мешает основному выводу.
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

// setupLogger пишет всё в stdout, ошибки дополнительно в errorLogPath.
// Возвращаемая функция закрывает файл ошибок.
func setupLogger(env, errorLogPath string) (*slog.Logger, func()) {
	if errorLogPath == "" {
		return slog.New(coreHandler(env, os.Stdout)), func() {}
	}

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Если не удалось открыть файл, продолжаем без него
		slog.Warn("Cannot open error log file", "path", errorLogPath, "error", err)
		return slog.New(coreHandler(env, os.Stdout)), func() {}
	}

	return newLogger(env, os.Stdout, errorFile), func() { _ = errorFile.Close() }
}

func newLogger(env string, out, errOut io.Writer) *slog.Logger {
	return slog.New(&dualHandler{
		coreHandler: coreHandler(env, out),
		errorHandler: slog.NewTextHandler(errOut, &slog.HandlerOptions{
			Level: slog.LevelError, // Только error и выше
		}),
	})
}

func coreHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if env == envDev {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}
