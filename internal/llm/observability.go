package llm

import (
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/workbrief/internal/domain"
)

// CallEvent records metadata about a single LLM invocation.
type CallEvent struct {
	Task      domain.Task
	Model     string
	Latency   time.Duration
	Mock      bool
	Success   bool
	ErrorKind ErrorKind
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes LLM call events to a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log.Named("llm")}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Duration("latency", event.Latency),
		zap.Bool("mock", event.Mock),
	}
	if event.Success {
		o.log.Info("llm call", fields...)
		return
	}
	o.log.Warn("llm call failed", append(fields, zap.String("error_kind", string(event.ErrorKind)))...)
}

// MultiObserver fans one event out to several observers.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m {
		if o != nil {
			o.OnCallComplete(event)
		}
	}
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
