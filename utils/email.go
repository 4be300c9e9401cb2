package utils

import (
	"VidTube/config"
	"crypto/tls"
	"errors"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// SendWelcomeMail sends a welcome email to a freshly registered user.
// Callers treat failures as non-fatal.
func SendWelcomeMail(to, username string) error {
	host := config.AppConfig.SMTPHost
	port := config.AppConfig.SMTPPort
	user := config.AppConfig.SMTPUser
	pass := config.AppConfig.SMTPPass
	from := config.AppConfig.SMTPFrom
	if host == "" || port == "" || user == "" || pass == "" || from == "" {
		return errors.New("smtp config missing")
	}

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Welcome to VidTube"
	e.HTML = []byte(`
		<h2>Welcome, ` + username + `</h2>
		<p>Your channel is ready. Upload your first video to get started.</p>
	`)

	addr := host + ":" + port
	auth := smtp.PlainAuth("", user, pass, host)
	tlsConfig := &tls.Config{ServerName: host}
	useTLS := config.AppConfig.SMTPTLS || port == "465"
	useStartTLS := config.AppConfig.SMTPStartTLS

	if useTLS {
		return e.SendWithTLS(addr, auth, tlsConfig)
	}
	if useStartTLS {
		return e.SendWithStartTLS(addr, auth, tlsConfig)
	}
	return e.Send(addr, auth)
}
