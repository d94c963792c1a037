package logging

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Cloud Logging severity names keyed by zap level.
var severities = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

var (
	processOnce   sync.Once
	processLogger *zap.Logger
)

func encodeSeverity(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	name, ok := severities[l]
	if !ok {
		name = "DEFAULT"
	}
	enc.AppendString(name)
}

func encodeTimestamp(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

// newLogger builds a JSON logger at info level writing one entry per line to out.
func newLogger(out zapcore.WriteSyncer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		MessageKey:     "message",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     encodeTimestamp,
		EncodeLevel:    encodeSeverity,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
	core := zapcore.NewCore(enc, out, zapcore.InfoLevel)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel), zap.ErrorOutput(out))
}

// Logger returns the process-wide logger, writing to stdout. The first call
// builds it, so nothing is written before the startup environment dump.
func Logger() *zap.Logger {
	processOnce.Do(func() {
		processLogger = newLogger(zapcore.Lock(os.Stdout))
	})
	return processLogger
}

// Sync flushes buffered entries.
func Sync() error {
	return Logger().Sync()
}
