// Package notify sends desktop notifications through the freedesktop
// notification service on the session bus.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	godbus "github.com/godbus/dbus/v5"
)

const (
	// DBusInterface is the notification interface name.
	DBusInterface = "org.freedesktop.Notifications"
	// DBusPath is the notification object path.
	DBusPath = "/org/freedesktop/Notifications"

	appName      = "easyfocus"
	errorTimeout = 5000 // milliseconds
)

// Urgency levels defined by org.freedesktop.Notifications.
const (
	UrgencyLow      byte = 0
	UrgencyNormal   byte = 1
	UrgencyCritical byte = 2
)

// Notification is the payload of a Notify call.
type Notification struct {
	AppIcon       string
	Summary       string
	Body          string
	Hints         map[string]godbus.Variant
	ExpireTimeout int32 // milliseconds; -1 lets the server decide
}

// Notifier sends notifications.
type Notifier struct {
	obj    godbus.BusObject
	logger *slog.Logger
}

// New connects to the session bus.
func New(logger *slog.Logger) (*Notifier, error) {
	conn, err := godbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return NewWithObject(conn.Object(DBusInterface, DBusPath), logger), nil
}

// NewWithObject creates a notifier that calls obj.
func NewWithObject(obj godbus.BusObject, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{obj: obj, logger: logger}
}

// Send delivers a notification and returns the id assigned by the server.
func (n *Notifier) Send(ctx context.Context, notification Notification) (uint32, error) {
	hints := notification.Hints
	if hints == nil {
		hints = map[string]godbus.Variant{}
	}

	call := n.obj.CallWithContext(ctx, DBusInterface+".Notify", 0,
		appName,
		uint32(0), // replaces_id
		notification.AppIcon,
		notification.Summary,
		notification.Body,
		[]string{}, // actions
		hints,
		notification.ExpireTimeout,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify: decode reply: %w", err)
	}

	n.logger.Debug("sent notification", "id", id, "summary", notification.Summary)
	return id, nil
}

// Error reports a fatal error as a transient critical notification.
// Failure to notify is only logged.
func (n *Notifier) Error(ctx context.Context, summary string, err error) {
	_, sendErr := n.Send(ctx, ErrorNotification(summary, err))
	if sendErr != nil {
		n.logger.Warn("failed to send error notification", "error", sendErr)
	}
}

// ErrorNotification builds the notification used by Error.
func ErrorNotification(summary string, err error) Notification {
	body := ""
	if err != nil {
		body = err.Error()
	}
	return Notification{
		AppIcon: "dialog-error",
		Summary: summary,
		Body:    body,
		Hints: map[string]godbus.Variant{
			"urgency":       godbus.MakeVariant(UrgencyCritical),
			"transient":     godbus.MakeVariant(true),
			"desktop-entry": godbus.MakeVariant(appName),
		},
		ExpireTimeout: errorTimeout,
	}
}
