package models

import "time"

type ContactMethod string

const (
	ContactByEmail ContactMethod = "email"
	ContactByPhone ContactMethod = "phone"
	ContactBySMS   ContactMethod = "sms"
)

type MessageType string

const (
	MessageGeneral     MessageType = "general"
	MessageBooking     MessageType = "booking"
	MessageService     MessageType = "service"
	MessageComplaint   MessageType = "complaint"
	MessageFeedback    MessageType = "feedback"
	MessagePartnership MessageType = "partnership"
)

type ContactMessage struct {
	ID                     uint          `json:"id" gorm:"primaryKey"`
	Name                   string        `json:"name"`
	Email                  string        `json:"email"`
	Subject                string        `json:"subject"`
	Message                string        `json:"message"`
	PhoneNumber            string        `json:"phone_number"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method"`
	MessageType            MessageType   `json:"message_type"`
	IsUrgent               bool          `json:"is_urgent"`
	IsRead                 bool          `json:"is_read"`
	SubmittedAt            time.Time     `json:"submitted_at"`
	RespondedAt            *time.Time    `json:"responded_at,omitempty"`
}
