package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v3"
)

// Mailer sends transactional email through Mailjet and records every
// attempt as an EmailLog row for the back office.
type Mailer struct {
	client    *mailjet.Client
	fromEmail string
	fromName  string
}

func NewMailer() *Mailer {
	pub := os.Getenv("MJ_APIKEY_PUBLIC")
	priv := os.Getenv("MJ_APIKEY_PRIVATE")

	m := &Mailer{
		fromEmail: os.Getenv("MAIL_FROM_EMAIL"),
		fromName:  os.Getenv("MAIL_FROM_NAME"),
	}
	if m.fromName == "" {
		m.fromName = "John Services Motel"
	}
	if pub != "" && priv != "" {
		m.client = mailjet.NewMailjetClient(pub, priv)
	}
	return m
}

// Configured reports whether Mailjet credentials were present at boot.
func (m *Mailer) Configured() bool {
	return m.client != nil && m.fromEmail != ""
}

// Send delivers one email and logs the outcome. The returned error is
// the provider error, already recorded.
func (m *Mailer) Send(to, subject, template, htmlBody string) error {
	entry := models.EmailLog{
		Recipient: to,
		Subject:   subject,
		Template:  template,
		Status:    models.EmailSent,
	}

	err := m.deliver(to, subject, htmlBody, &entry)
	if err != nil {
		entry.Status = models.EmailFailed
		entry.Error = err.Error()
		log.Printf("[mail] %s to %s failed: %v", template, to, err)
	}

	if storage.Available() {
		storage.DB.Create(&entry)
	}
	return err
}

func (m *Mailer) deliver(to, subject, htmlBody string, entry *models.EmailLog) error {
	if !m.Configured() {
		return fmt.Errorf("mailjet credentials not configured")
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{{
			From: &mailjet.RecipientV31{
				Email: m.fromEmail,
				Name:  m.fromName,
			},
			To: &mailjet.RecipientsV31{
				mailjet.RecipientV31{Email: to},
			},
			Subject:  subject,
			HTMLPart: htmlBody,
		}},
	}

	res, err := m.client.SendMailV31(&messages)
	if err != nil {
		return err
	}

	if len(res.ResultsV31) > 0 && len(res.ResultsV31[0].To) > 0 {
		entry.ProviderID = strconv.FormatInt(res.ResultsV31[0].To[0].MessageID, 10)
	}
	return nil
}

// SendReservationConfirmation emails the guest their booking reference.
func (m *Mailer) SendReservationConfirmation(to string, reservation models.Reservation, chambre models.Chambre) error {
	subject := fmt.Sprintf("Reservation %s confirmed", reservation.Code)
	body := fmt.Sprintf(
		`<h2>Your reservation is confirmed</h2>
<p>Room: %s</p>
<p>Check-in: %s</p>
<p>Check-out: %s</p>
<p>Reference: <strong>%s</strong></p>
<p>Total: %.2f %s</p>`,
		chambre.Name,
		reservation.CheckIn.Format("January 2, 2006"),
		reservation.CheckOut.Format("January 2, 2006"),
		reservation.Code,
		float64(reservation.TotalPrice)/100,
		reservation.Currency,
	)
	return m.Send(to, subject, "reservation_confirmation", body)
}

// SendPasswordReset emails the short-lived reset link.
func (m *Mailer) SendPasswordReset(to, link string) error {
	body := fmt.Sprintf(
		`<p>A password reset was requested for your account at %s.</p>
<p><a href="%s">Reset your password</a>. The link expires in 10 minutes.</p>`,
		time.Now().Format("January 2, 2006 15:04"),
		link,
	)
	return m.Send(to, "Reset your password", "password_reset", body)
}
