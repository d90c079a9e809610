package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/barbersalon/salon-api/models"
)

// SendEmail delivers an HTML mail through the SMTP account from the
// environment. Returns an error without sending when SMTP_HOST is unset.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST is not set")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASS"))
	return d.DialAndSend(m)
}

// SendBookingConfirmation mails the customer their reference and appointment
// details right after a booking is created.
func SendBookingConfirmation(b *models.Booking) error {
	serviceName := ""
	if b.Service != nil {
		serviceName = b.Service.Name
	}
	staffName := ""
	if b.StaffMember != nil {
		staffName = b.StaffMember.FullName
	}

	subject := fmt.Sprintf("Booking received - %s", b.Reference)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for booking with us. Your appointment request has been received.</p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Staff member:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>We will confirm your appointment shortly.</p>
	`, b.FullName(), b.Reference, serviceName, staffName,
		b.AppointmentDate.Format("Monday, January 2, 2006"), b.AppointmentTime)

	return SendEmail(b.Email, subject, body)
}

// SendBookingReminder mails the customer an hour before a confirmed
// appointment.
func SendBookingReminder(b *models.Booking) error {
	serviceName := ""
	if b.Service != nil {
		serviceName = b.Service.Name
	}
	staffName := ""
	if b.StaffMember != nil {
		staffName = b.StaffMember.FullName
	}

	subject := fmt.Sprintf("Reminder: your appointment at %s today", b.AppointmentTime)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment in one hour.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Staff member:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive a few minutes early. If you need to reschedule, contact us as soon as possible.</p>
	`, b.FullName(), serviceName, staffName, b.AppointmentTime)

	return SendEmail(b.Email, subject, body)
}
