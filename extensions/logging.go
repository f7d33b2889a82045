package extensions

import (
	"log/slog"
	"time"

	"github.com/a14e/mydi"
)

// LoggingExtension logs every factory invocation during Build through a
// slog.Handler.
type LoggingExtension struct {
	mydi.BaseExtension
	logger *slog.Logger
}

// NewLoggingExtension creates a logging extension backed by the given
// handler.
func NewLoggingExtension(logHandler slog.Handler) *LoggingExtension {
	return &LoggingExtension{
		BaseExtension: mydi.NewBaseExtension("logging"),
		logger:        slog.New(logHandler),
	}
}

func (e *LoggingExtension) Wrap(next func() (any, error), op *mydi.Operation) (any, error) {
	start := time.Now()
	result, err := next()
	duration := time.Since(start)

	if err != nil {
		e.logger.Error("component failed",
			"key", op.Key.Format(mydi.ShortNames),
			"origin", op.Origin,
			"duration", duration,
			"error", err.Error(),
		)
		return result, err
	}

	e.logger.Debug("component built",
		"key", op.Key.Format(mydi.ShortNames),
		"origin", op.Origin,
		"duration", duration,
	)
	return result, err
}

func (e *LoggingExtension) OnBuildEnd(inj *mydi.Injector, err error) {
	if err != nil {
		e.logger.Error("container build failed", "error", err.Error())
		return
	}
	e.logger.Info("container built", "components", inj.Len())
}
