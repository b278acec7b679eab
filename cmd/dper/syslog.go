package main

import (
	syslog "github.com/RackSec/srslog"
	"github.com/sirupsen/logrus"
)

// Logrus hook that copies log entries to syslog.
type syslogHook struct {
	writer *syslog.Writer
}

var _ logrus.Hook = &syslogHook{}

func newSyslogHook(tag string) (*syslogHook, error) {
	writer, err := syslog.Dial("", "", syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
	if err != nil {
		return nil, err
	}
	return &syslogHook{writer: writer}, nil
}

func (h *syslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *syslogHook) Fire(e *logrus.Entry) error {
	line, err := e.String()
	if err != nil {
		return err
	}
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return h.writer.Crit(line)
	case logrus.ErrorLevel:
		return h.writer.Err(line)
	case logrus.WarnLevel:
		return h.writer.Warning(line)
	case logrus.InfoLevel:
		return h.writer.Info(line)
	default:
		return h.writer.Debug(line)
	}
}
