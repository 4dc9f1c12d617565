// Package platform delivers desktop notifications through the host's
// notification service.
package platform

import "time"

// Options configures how a notification is displayed.
type Options struct {
	// AppName identifies the sender; empty means "Paintbox".
	AppName string
	// IconPath, when non-empty, points to an image the notification
	// server may show next to the message.
	IconPath string
	// Timeout is how long the message stays visible; zero means five
	// seconds.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Paintbox"
	}
	return o.AppName
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return 5 * time.Second
	}
	return o.Timeout
}
