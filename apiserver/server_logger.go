package apiserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Logger wraps a lager.Logger in the echo.Logger interface. Messages below
// the configured level are dropped; WARN is logged at lager's INFO.
type Logger struct {
	lvl    log.Lvl
	lager  lager.Logger
	action string
}

var _ echo.Logger = &Logger{}
var _ io.Writer = &Logger{}

func NewLogger(logger lager.Logger) *Logger {
	return &Logger{
		lvl:    log.DEBUG,
		lager:  logger,
		action: "log",
	}
}

func (l *Logger) enabled(lvl log.Lvl) bool {
	return lvl >= l.lvl
}

func (l *Logger) log(lvl log.Lvl, data lager.Data) {
	if !l.enabled(lvl) {
		return
	}
	switch lvl {
	case log.DEBUG:
		l.lager.Debug(l.action, data)
	case log.ERROR:
		l.lager.Error(l.action, errors.New(fmt.Sprint(data["detail"])), data)
	default:
		l.lager.Info(l.action, data)
	}
}

func detail(i ...interface{}) lager.Data {
	return lager.Data{"detail": fmt.Sprint(i...)}
}

func detailf(format string, i ...interface{}) lager.Data {
	return lager.Data{"detail": fmt.Sprintf(format, i...)}
}

func (l *Logger) Debug(i ...interface{}) { l.log(log.DEBUG, detail(i...)) }
func (l *Logger) Debugf(format string, i ...interface{}) { l.log(log.DEBUG, detailf(format, i...)) }
func (l *Logger) Debugj(j log.JSON) { l.log(log.DEBUG, lager.Data(j)) }
func (l *Logger) Info(i ...interface{}) { l.log(log.INFO, detail(i...)) }
func (l *Logger) Infof(format string, i ...interface{}) { l.log(log.INFO, detailf(format, i...)) }
func (l *Logger) Infoj(j log.JSON) { l.log(log.INFO, lager.Data(j)) }
func (l *Logger) Print(i ...interface{}) { l.log(log.INFO, detail(i...)) }
func (l *Logger) Printf(format string, i ...interface{}) { l.log(log.INFO, detailf(format, i...)) }
func (l *Logger) Printj(j log.JSON) { l.log(log.INFO, lager.Data(j)) }
func (l *Logger) Warn(i ...interface{}) { l.log(log.WARN, detail(i...)) }
func (l *Logger) Warnf(format string, i ...interface{}) { l.log(log.WARN, detailf(format, i...)) }
func (l *Logger) Warnj(j log.JSON) { l.log(log.WARN, lager.Data(j)) }
func (l *Logger) Error(i ...interface{}) { l.log(log.ERROR, detail(i...)) }
func (l *Logger) Errorf(format string, i ...interface{}) { l.log(log.ERROR, detailf(format, i...)) }
func (l *Logger) Errorj(j log.JSON) { l.log(log.ERROR, lager.Data(j)) }

func (l *Logger) Fatal(i ...interface{}) {
	l.lager.Fatal(l.action, errors.New(fmt.Sprint(i...)))
}

func (l *Logger) Fatalf(format string, i ...interface{}) {
	l.lager.Fatal(l.action, fmt.Errorf(format, i...))
}

func (l *Logger) Fatalj(j log.JSON) {
	l.lager.Fatal(l.action, errors.New("fatal"), lager.Data(j))
}

func (l *Logger) Panic(i ...interface{}) {
	l.lager.Error(l.action, errors.New("panic"), detail(i...))
	panic(fmt.Sprint(i...))
}

func (l *Logger) Panicf(format string, i ...interface{}) {
	l.lager.Error(l.action, errors.New("panic"), detailf(format, i...))
	panic(fmt.Sprintf(format, i...))
}

func (l *Logger) Panicj(j log.JSON) {
	l.lager.Error(l.action, errors.New("panic"), lager.Data(j))
	panic(fmt.Sprintf("%v", j))
}

func (l *Logger) Level() log.Lvl {
	return l.lvl
}

func (l *Logger) SetLevel(newLvl log.Lvl) {
	l.lvl = newLvl
}

func (l *Logger) Prefix() string {
	return l.action
}

func (l *Logger) SetPrefix(p string) {
	l.action = p
}

func (l *Logger) Output() io.Writer {
	return os.Stdout
}

func (l *Logger) SetOutput(w io.Writer) {}

func (l *Logger) SetHeader(_ string) {}

// Write accepts the JSON lines produced by echo's request logger middleware
func (l *Logger) Write(p []byte) (int, error) {
	logMessage := map[string]interface{}{}
	if err := json.Unmarshal(p, &logMessage); err != nil {
		return 0, err
	}
	l.lager.Info("request", logMessage)
	return len(p), nil
}
