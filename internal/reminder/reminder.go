// Package reminder runs the scheduled sweep that emails customers ahead of
// confirmed appointments.
package reminder

import (
	"context"
	"fmt"
	"time"

	"salonbook/internal/config"
	"salonbook/internal/email"
	"salonbook/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Manager schedules and executes the reminder sweep
type Manager struct {
	config          config.ReminderConfig
	appointmentRepo repository.AppointmentRepository
	salonRepo       repository.SalonRepository
	emailService    email.EmailSender
	cron            *cron.Cron
}

// NewManager creates a new reminder manager
func NewManager(
	cfg config.ReminderConfig,
	appointmentRepo repository.AppointmentRepository,
	salonRepo repository.SalonRepository,
	emailService email.EmailSender,
) *Manager {
	// Standard 5-field cron expressions, no seconds
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Manager{
		config:          cfg,
		appointmentRepo: appointmentRepo,
		salonRepo:       salonRepo,
		emailService:    emailService,
		cron:            c,
	}
}

// Start runs the sweep on its configured schedule until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) error {
	if !m.config.Enabled {
		log.Info().Msg("reminder sweep is disabled, skipping scheduler")
		return nil
	}

	_, err := m.cron.AddFunc(m.config.Schedule, func() {
		if err := m.Sweep(ctx); err != nil {
			log.Error().Err(err).Msg("reminder sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}

	m.cron.Start()
	log.Info().Str("schedule", m.config.Schedule).Msg("reminder scheduler started")

	<-ctx.Done()
	log.Info().Msg("stopping reminder scheduler")
	m.cron.Stop()

	return nil
}

// Sweep emails every confirmed, un-reminded appointment starting within the
// lead window and marks it reminded. A send failure skips the mark so the
// appointment is retried on the next tick.
func (m *Manager) Sweep(ctx context.Context) error {
	now := time.Now().UTC()
	until := now.Add(time.Duration(m.config.LeadHours) * time.Hour)

	due, err := m.appointmentRepo.ListDueReminders(ctx, now, until)
	if err != nil {
		return fmt.Errorf("failed to list due reminders: %w", err)
	}

	for _, apt := range due {
		salon, err := m.salonRepo.GetByID(ctx, apt.SalonID)
		if err != nil {
			log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to load salon for reminder")
			continue
		}

		loc, err := time.LoadLocation(salon.Timezone)
		if err != nil {
			loc = time.UTC
		}

		if err := m.emailService.SendAppointmentReminder(
			apt.CustomerEmail, apt.CustomerName, salon.Name, apt.EffectiveTime(), loc,
		); err != nil {
			log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to send reminder")
			continue
		}

		if err := m.appointmentRepo.MarkReminded(ctx, apt.ID, time.Now().UTC()); err != nil {
			log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to mark appointment reminded")
		}
	}

	return nil
}
