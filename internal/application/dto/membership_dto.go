package dto

import "github.com/shopspring/decimal"

// TierCardDTO una tarjeta de la comparativa de niveles, con la elegibilidad
// calculada respecto al nivel actual del usuario.
type TierCardDTO struct {
	Name         string          `json:"name"`
	Label        string          `json:"label"`
	Icon         string          `json:"icon"`
	Highlight    bool            `json:"highlight"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Threshold    int64           `json:"points_threshold"`
	Features     []string        `json:"features"`
	Eligibility  string          `json:"eligibility"` // current, locked, upgradeable
}

// TierProgressDTO respuesta de GET /api/membership/progress.
type TierProgressDTO struct {
	CurrentTier      string `json:"current_tier"`
	NextTier         string `json:"next_tier,omitempty"` // vacío si ya es elite
	LoyaltyPoints    int64  `json:"loyalty_points"`
	CurrentThreshold int64  `json:"current_threshold"`
	NextThreshold    int64  `json:"next_threshold,omitempty"`
	ProgressPercent  int    `json:"progress_percent"` // 0-100, 100 si no hay siguiente
}

// UpgradeRequest entrada de POST /api/membership/upgrade.
type UpgradeRequest struct {
	TargetTier string `json:"target_tier" validate:"required,oneof=premium professional elite"`
}
