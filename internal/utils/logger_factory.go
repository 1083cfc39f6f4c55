package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	logLevelDebugStringConstant                = "debug"
	logLevelInfoStringConstant                 = "info"
	logLevelWarnStringConstant                 = "warn"
	logLevelErrorStringConstant                = "error"
	logFormatStructuredStringConstant          = "structured"
	logFormatConsoleStringConstant             = "console"
	jsonZapEncodingStringConstant              = "json"
	consoleZapEncodingStringConstant           = "console"
	unsupportedLogLevelTemplateConstant        = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant       = "unsupported log format: %s"
	logDirectoryCreationErrorTemplateConstant  = "failed to create log directory %s: %w"
	logDirectoryPermissionsConstant            = 0o755
	defaultLogFileMaximumSizeMegabytesConstant = 10
	defaultLogFileMaximumBackupsConstant       = 5
	defaultLogFileMaximumAgeDaysConstant       = 28
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerSinkOptions describes the optional rotating file sink attached to created loggers.
type LoggerSinkOptions struct {
	FilePath             string
	MaximumSizeMegabytes int
	MaximumBackups       int
	MaximumAgeDays       int
}

// LoggerOutputs bundles the loggers assembled by the factory.
type LoggerOutputs struct {
	DiagnosticLogger *zap.Logger
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: jsonZapEncodingStringConstant,
	LogFormatConsole:    consoleZapEncodingStringConstant,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	loggerOutputs, creationError := factory.CreateLoggerOutputs(requestedLogLevel, requestedLogFormat, LoggerSinkOptions{})
	if creationError != nil {
		return nil, creationError
	}

	return loggerOutputs.DiagnosticLogger, nil
}

// CreateLoggerOutputs produces the diagnostic logger, teeing entries into a
// rotating log file when the sink options name one.
func (factory *LoggerFactory) CreateLoggerOutputs(requestedLogLevel LogLevel, requestedLogFormat LogFormat, sinkOptions LoggerSinkOptions) (LoggerOutputs, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return LoggerOutputs{}, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoding, formatExists := logFormatEncodingMapping[requestedLogFormat]
	if !formatExists {
		return LoggerOutputs{}, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.Encoding = encoding

	diagnosticLogger, buildError := configuration.Build()
	if buildError != nil {
		return LoggerOutputs{}, buildError
	}

	logFilePath := strings.TrimSpace(sinkOptions.FilePath)
	if len(logFilePath) > 0 {
		fileCore, fileCoreError := buildRotatingFileCore(logFilePath, zapLogLevel, encoding, sinkOptions)
		if fileCoreError != nil {
			return LoggerOutputs{}, fileCoreError
		}

		diagnosticLogger = diagnosticLogger.WithOptions(zap.WrapCore(func(standardErrorCore zapcore.Core) zapcore.Core {
			return zapcore.NewTee(standardErrorCore, fileCore)
		}))
	}

	return LoggerOutputs{DiagnosticLogger: diagnosticLogger}, nil
}

func buildRotatingFileCore(logFilePath string, zapLogLevel zapcore.Level, encoding string, sinkOptions LoggerSinkOptions) (zapcore.Core, error) {
	logDirectory := filepath.Dir(logFilePath)
	if directoryError := os.MkdirAll(logDirectory, logDirectoryPermissionsConstant); directoryError != nil {
		return nil, fmt.Errorf(logDirectoryCreationErrorTemplateConstant, logDirectory, directoryError)
	}

	rotatingWriter := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    positiveOrDefault(sinkOptions.MaximumSizeMegabytes, defaultLogFileMaximumSizeMegabytesConstant),
		MaxBackups: positiveOrDefault(sinkOptions.MaximumBackups, defaultLogFileMaximumBackupsConstant),
		MaxAge:     positiveOrDefault(sinkOptions.MaximumAgeDays, defaultLogFileMaximumAgeDaysConstant),
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	fileEncoder := zapcore.NewJSONEncoder(encoderConfiguration)
	if encoding == consoleZapEncodingStringConstant {
		fileEncoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	}

	return zapcore.NewCore(fileEncoder, zapcore.AddSync(rotatingWriter), zapLogLevel), nil
}

func positiveOrDefault(configuredValue int, defaultValue int) int {
	if configuredValue > 0 {
		return configuredValue
	}

	return defaultValue
}
