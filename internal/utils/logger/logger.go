package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"passwordy/internal/app/server/config"
)

// New возвращает логгер для окружения: local - цветной вывод, dev - JSON с debug,
// остальное - JSON с уровнем info. Непустой level (LOG_LEVEL) заменяет уровень окружения.
func New(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(levelOr(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}))
	}

	return log
}

// levelOr разбирает имя уровня (debug, info, warn, error); пустое или неизвестное дает def.
func levelOr(name string, def slog.Level) slog.Level {
	if name == "" {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return def
	}
	return l
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}

	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
