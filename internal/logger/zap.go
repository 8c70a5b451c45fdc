package logger

import (
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/nunet/opencompute-monitor/internal/config"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*otelzap.Logger)
)

type Logger struct {
	*zap.Logger
}

func (l *Logger) init() error {
	var err error
	if _, debug := os.LookupEnv("OPENCOMPUTE_DEBUG"); debug || config.GetConfig().General.Debug {
		zapConfig := zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l.Logger, err = zapConfig.Build()
	} else {
		l.Logger, err = zap.NewProduction()
	}

	return err
}

// New takes in a package to initialize the new Logger in.
func New(pkg string) *Logger {
	Log := &Logger{}
	if err := Log.init(); err != nil {
		panic(err)
	}

	Log.Logger = Log.Logger.With(
		zap.String("package", pkg),
	)

	return Log
}

// OtelZapLogger returns a span-aware logger for pkg. Calls made through
// Ctx(ctx) are recorded as events on the span carried by ctx.
func OtelZapLogger(pkg string) otelzap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[pkg]; ok {
		return *l
	}
	l := otelzap.New(New(pkg).Logger, otelzap.WithMinLevel(zapcore.InfoLevel))
	loggers[pkg] = l
	return *l
}
