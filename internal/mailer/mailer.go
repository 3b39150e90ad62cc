package mailer

import (
	"fmt"
	"log"

	"koperasi-backend/config"

	"gopkg.in/gomail.v2"
)

// SendDecision mengirim email pemberitahuan hasil approve/reject ke anggota.
// Best effort: kalau SMTP belum dikonfigurasi, tidak melakukan apa-apa;
// kalau gagal kirim, cuma dicatat di log. Dipanggil dari goroutine agar
// respon API tidak menunggu SMTP.
func SendDecision(to, name, subject, status string) {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" || to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("MAIL_FROM", "noreply@koperasi.com"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Koperasi: %s", subject))
	m.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nPengajuan %s Anda telah %s.\n\nSalam,\nKoperasi", name, subject, statusWord(status)))

	d := gomail.NewDialer(
		host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Println("Gagal kirim email notifikasi:", err)
	}
}

func statusWord(status string) string {
	if status == "approved" {
		return "disetujui"
	}
	return "ditolak"
}
