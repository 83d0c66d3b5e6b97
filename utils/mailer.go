package utils

import (
	"log"

	"backend-master/config"

	"gopkg.in/gomail.v2"
)

// SendWelcomeEmail mengirim email pemberitahuan akun baru.
// SMTP_HOST kosong berarti email dinonaktifkan, bukan error.
func SendWelcomeEmail(to, name string) {
	if config.SMTPHost == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.MailSender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Akun backoffice kamu sudah dibuat")
	m.SetBody("text/plain", "Halo "+name+",\n\nAkun backoffice kamu sudah aktif. Silakan login dengan email ini.")

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Failed to send welcome email:", err)
	}
}
