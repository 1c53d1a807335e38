package entity

import "time"

// Claves de preferencias de notificación conocidas. El mapa admite claves
// adicionales; cada toggle es independiente e idempotente.
const (
	PrefEmailUpdates     = "email_updates"
	PrefProjectActivity  = "project_activity"
	PrefBillingAlerts    = "billing_alerts"
	PrefMarketingEmails  = "marketing_emails"
	PrefWeeklyDigest     = "weekly_digest"
)

// DefaultPreferences preferencias iniciales de un usuario nuevo.
func DefaultPreferences() map[string]bool {
	return map[string]bool{
		PrefEmailUpdates:    true,
		PrefProjectActivity: true,
		PrefBillingAlerts:   true,
		PrefMarketingEmails: false,
		PrefWeeklyDigest:    false,
	}
}

// User representa la cuenta del creador: perfil editable, preferencias de
// notificación y estado de membresía (nivel + puntos de lealtad).
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Name          string
	Phone         string // opcional
	Bio           string
	AvatarURL     string
	Tier          string // free, premium, professional, elite
	LoyaltyPoints int64
	Preferences   map[string]bool
	Status        string // active, inactive, suspended
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
