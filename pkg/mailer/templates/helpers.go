package templates

import (
	"time"
)

type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = ip } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithAppURL(url string) Option   { return func(d *EmailData) { d.AppURL = url } }
func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04 MST") }
}

func newData(typ, appName, name, email string, opts ...Option) EmailData {
	d := EmailData{Name: name, Email: email, Type: typ, AppName: appName}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(appName, name, email string, opts ...Option) map[string]any {
	return ToMap(newData(Welcome, appName, name, email, opts...))
}

func NewLoginNotificationData(appName, name, email string, opts ...Option) map[string]any {
	return ToMap(newData(LoginNotification, appName, name, email, opts...))
}
