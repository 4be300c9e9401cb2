package config

import "testing"

func TestInitConfigSMTPSwitches(t *testing.T) {
	InitConfig()
	if AppConfig.SMTPTLS || AppConfig.SMTPStartTLS {
		t.Fatal("SMTP TLS switches must default to off")
	}

	t.Setenv("SMTP_TLS", "1")
	t.Setenv("SMTP_STARTTLS", "true")
	InitConfig()
	if !AppConfig.SMTPTLS {
		t.Fatal("SMTP_TLS=1 not picked up")
	}
	if !AppConfig.SMTPStartTLS {
		t.Fatal("SMTP_STARTTLS=true not picked up")
	}

	t.Setenv("SMTP_TLS", "not-a-bool")
	InitConfig()
	if AppConfig.SMTPTLS {
		t.Fatal("unparseable SMTP_TLS must fall back to the default")
	}
}
