package utils

import (
	"fmt"
	"log"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	CurrentLevel   LogLevel = LevelWarn
	ShowRaylibInfo bool
	ShowDebugUI    bool
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel accepts the level names printed by String, in any case.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return CurrentLevel, fmt.Errorf("unknown log level %q", name)
}

func logMessage(level LogLevel, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}

	const (
		colorReset  = "\033[0m"
		colorCyan   = "\033[36m"
		colorBlue   = "\033[34m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
	)

	var colorCode string
	switch level {
	case LevelDebug:
		colorCode = colorCyan
	case LevelInfo:
		colorCode = colorBlue
	case LevelWarn:
		colorCode = colorYellow
	case LevelError:
		colorCode = colorRed
	}

	prefix := fmt.Sprintf("%s[%s]%s ", colorCode, level.String(), colorReset)
	log.Printf(prefix+format, v...)
}

func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }

// InstallRaylibLogger routes raylib's trace log through this logger.
func InstallRaylibLogger() {
	rl.SetTraceLogCallback(raylibLogCallback)
	if CurrentLevel <= LevelDebug {
		rl.SetTraceLogLevel(rl.LogDebug)
	} else {
		rl.SetTraceLogLevel(rl.LogInfo)
	}
}

func raylibLogCallback(level int, text string) {
	const colorMagenta = "\033[35m"
	const colorReset = "\033[0m"
	formattedText := colorMagenta + "[RAYLIB] " + colorReset + text
	switch rl.TraceLogLevel(level) {
	case rl.LogTrace, rl.LogDebug:
		Debug("%s", formattedText)
	case rl.LogInfo:
		if ShowRaylibInfo || CurrentLevel <= LevelInfo {
			Info("%s", formattedText)
		}
	case rl.LogWarning:
		Warn("%s", formattedText)
	case rl.LogError, rl.LogFatal:
		Error("%s", formattedText)
	}
}
