package models

import (
	"strings"
	"time"
)

// DayHours holds a single weekday's opening window.
type DayHours struct {
	Open   string `bson:"open" json:"open"`     // "HH:MM", 24-hour clock
	Close  string `bson:"close" json:"close"`   // "HH:MM", must be after Open when not closed
	Closed bool   `bson:"closed" json:"closed"` // true when the business does not open that weekday
}

// WorkingHours maps a lowercase weekday name ("monday" ... "sunday") to its hours.
type WorkingHours map[string]DayHours

// ForWeekday returns the entry for the given weekday. A missing entry counts as closed.
func (wh WorkingHours) ForWeekday(day time.Weekday) DayHours {
	if wh == nil {
		return DayHours{Closed: true}
	}
	entry, ok := wh[strings.ToLower(day.String())]
	if !ok {
		return DayHours{Closed: true}
	}
	return entry
}

// Holiday closes the whole business day. Recurring holidays match the same
// month and day every year.
type Holiday struct {
	Date      string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Recurring bool   `bson:"recurring" json:"recurring"`
	Label     string `bson:"label,omitempty" json:"label,omitempty"`
}

// Matches reports whether the holiday falls on the given date.
func (h Holiday) Matches(date time.Time) bool {
	parsed, err := time.ParseInLocation("2006-01-02", h.Date, date.Location())
	if err != nil {
		return false
	}
	if h.Recurring {
		return parsed.Month() == date.Month() && parsed.Day() == date.Day()
	}
	return parsed.Year() == date.Year() && parsed.Month() == date.Month() && parsed.Day() == date.Day()
}

// WhatsAppSettings holds the business's WhatsApp Business API credentials.
type WhatsAppSettings struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	PhoneID string `bson:"phone_id,omitempty" json:"phoneId,omitempty"`
	Token   string `bson:"token,omitempty" json:"-"`
}

// EmailSettings holds the business's outbound email configuration.
type EmailSettings struct {
	Enabled  bool   `bson:"enabled" json:"enabled"`
	From     string `bson:"from,omitempty" json:"from,omitempty"`
	SMTPHost string `bson:"smtp_host,omitempty" json:"smtpHost,omitempty"`
	SMTPPort int    `bson:"smtp_port,omitempty" json:"smtpPort,omitempty"`
}

// BusinessSettings groups per-business configuration the scheduling core reads.
type BusinessSettings struct {
	WhatsApp          WhatsAppSettings `bson:"whatsapp" json:"whatsapp"`
	Email             EmailSettings    `bson:"email" json:"email"`
	SlotBufferMinutes int              `bson:"slot_buffer_minutes,omitempty" json:"slotBufferMinutes,omitempty"` // default buffer when the service defines none
}

// Location resolves the business's IANA timezone. Returns nil when the
// timezone is unset or unknown; callers pick their own fallback.
func (b *Business) Location() *time.Location {
	if b == nil || b.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil
	}
	return loc
}

// Business is the tenant record. Working hours and holidays are embedded;
// ad-hoc blocks live in their own collection (see Block).
type Business struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	Timezone     string           `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA name, e.g. "America/Sao_Paulo"
	WorkingHours WorkingHours     `bson:"working_hours,omitempty" json:"workingHours,omitempty"`
	Holidays     []Holiday        `bson:"holidays,omitempty" json:"holidays,omitempty"`
	Settings     BusinessSettings `bson:"settings" json:"settings"`
	CreatedAt    time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time        `bson:"updated_at" json:"updatedAt"`
}
