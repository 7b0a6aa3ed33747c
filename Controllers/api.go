package Controllers

import (
	"github.com/rdclab2001/rdc-backend/Notifications"
	"github.com/rdclab2001/rdc-backend/Otp"
)

// API bundles the handler dependencies that are not package-level: the OTP
// store and the outbound notification channels. Wiring them here instead of
// through globals lets tests swap in a store with a fake clock and a
// disabled mailer.
type API struct {
	OtpStore *Otp.Store
	Notifier *Notifications.Notifier
	Mailer   *Notifications.Mailer
	Telegram *Notifications.Telegram
}

func NewAPI(store *Otp.Store, notifier *Notifications.Notifier, mailer *Notifications.Mailer, telegram *Notifications.Telegram) *API {
	return &API{
		OtpStore: store,
		Notifier: notifier,
		Mailer:   mailer,
		Telegram: telegram,
	}
}
