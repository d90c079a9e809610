package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

// StartReminderJob schedules the appointment reminder sweep. Every five
// minutes it mails customers whose confirmed appointment starts in roughly an
// hour.
func StartReminderJob(bookings store.BookingStore) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", func() {
		sendReminders(bookings)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Println("Reminder job scheduler started")
	return c, nil
}

func sendReminders(bookings store.BookingStore) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	confirmed, err := bookings.ListBookingsByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		log.Printf("reminder sweep: %v", err)
		return
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for i := range confirmed {
		at := confirmed[i].AppointmentDateTime()
		if at.Before(startWindow) || at.After(endWindow) {
			continue
		}
		if err := utils.SendBookingReminder(&confirmed[i]); err != nil {
			log.Printf("reminder for booking %s not sent: %v", confirmed[i].Reference, err)
			continue
		}
		log.Printf("sent reminder for booking %s to %s", confirmed[i].Reference, confirmed[i].Email)
	}
}
