package logger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"trading-dashboard/pkg/common"
	"trading-dashboard/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AlertNotifier delivers a plain-text alert somewhere a human will see it.
type AlertNotifier interface {
	Notify(ctx context.Context, message string) error
}

// AlertField marks an entry to be forwarded by the alert core.
func AlertField() zap.Field {
	return zap.Bool(common.KEY_LOG_HOOK_SEND_ALERT, true)
}

type AlertCore struct {
	zapcore.LevelEnabler
	notifier AlertNotifier
	fields   []zapcore.Field
	timeout  time.Duration
}

func newAlertCore(notifier AlertNotifier, minLevel zapcore.Level) *AlertCore {
	return &AlertCore{
		LevelEnabler: minLevel,
		notifier:     notifier,
		timeout:      10 * time.Second,
	}
}

func (a *AlertCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *a
	clone.fields = append(append([]zapcore.Field{}, a.fields...), fields...)
	return &clone
}

func (a *AlertCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if a.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, a)
	}
	return checkedEntry
}

func (a *AlertCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := append(append([]zapcore.Field{}, a.fields...), fields...)
	if !shouldAlert(all) {
		return nil
	}
	message := formatAlert(entry, all)
	utils.GoSafe(func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		// the alert path must never log through itself
		_ = a.notifier.Notify(ctx, message)
	})
	return nil
}

func (a *AlertCore) Sync() error {
	return nil
}

func shouldAlert(fields []zapcore.Field) bool {
	for _, f := range fields {
		if f.Key == common.KEY_LOG_HOOK_SEND_ALERT && f.Type == zapcore.BoolType && f.Integer == 1 {
			return true
		}
	}
	return false
}

func formatAlert(entry zapcore.Entry, fields []zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		if f.Key == common.KEY_LOG_HOOK_SEND_ALERT {
			continue
		}
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s alert\n\nMessage: %s\n", entry.Level.CapitalString(), entry.Message)
	if len(keys) > 0 {
		b.WriteString("\nFields:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %v\n", k, enc.Fields[k])
		}
	}
	fmt.Fprintf(&b, "\nTime: %s", entry.Time.Format("2006-01-02 15:04:05"))
	return b.String()
}
