package logger

import (
	"fmt"
)

type Logger interface {
	Log(format string, args ...interface{})
}

type logger struct {
	userName string
}

func NewLogger(username string) Logger {
	return &logger{
		userName: username,
	}
}

func (l *logger) Log(format string, args ...interface{}) {
	fmt.Printf("[%s] %s\n", l.userName, fmt.Sprintf(format, args...))
}
