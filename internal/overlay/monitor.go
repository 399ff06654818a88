package overlay

import (
	"log/slog"
	"unsafe"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
)

// findMonitor returns the monitor whose connector is the output name, or nil
// to let the compositor choose.
func findMonitor(display *gdk.Display, output string, logger *slog.Logger) *gdk.Monitor {
	if display == nil {
		return nil
	}

	monitors := display.Monitors()
	if monitors == nil {
		logger.Warn("no monitors list available")
		return nil
	}

	var (
		all        []*gdk.Monitor
		connectors []string
	)
	for i := uint(0); i < monitors.NItems(); i++ {
		m := wrapMonitor(monitors.Item(i))
		if m == nil {
			continue
		}
		all = append(all, m)
		connectors = append(connectors, m.Connector())
	}

	i := monitorIndex(connectors, output)
	if i < 0 {
		logger.Warn("no monitor for output, using compositor default",
			"output", output,
			"connectors", connectors,
		)
		return nil
	}
	return all[i]
}

// wrapMonitor wraps a list item as a gdk.Monitor.
// gotk4 does not export its own wrapper for GdkMonitor.
func wrapMonitor(obj *glib.Object) *gdk.Monitor {
	if obj == nil {
		return nil
	}
	// gdk.Monitor only embeds *glib.Object, so the layouts match.
	type monitor struct {
		_ [0]func()
		*glib.Object
	}
	m := &monitor{Object: obj}
	return (*gdk.Monitor)(unsafe.Pointer(m))
}
