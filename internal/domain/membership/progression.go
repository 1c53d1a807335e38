// Package membership contiene la lógica pura de progresión de niveles:
// orden total de los niveles, siguiente nivel y porcentaje de avance entre
// los umbrales de puntos de lealtad. Sin dependencias de infraestructura.
package membership

import "github.com/creatorhub/portal-api/internal/domain/entity"

// Elegibilidad de una tarjeta de nivel respecto al nivel actual del usuario.
const (
	EligibilityCurrent     = "current"     // mismo índice: tarjeta deshabilitada
	EligibilityLocked      = "locked"      // índice menor: no hay downgrade aquí
	EligibilityUpgradeable = "upgradeable" // índice estrictamente mayor
)

// NextTier devuelve el sucesor inmediato del nivel dado dentro del orden
// free < premium < professional < elite. ok=false si ya es elite o el nivel
// no existe.
func NextTier(current string) (string, bool) {
	i := entity.TierIndex(current)
	if i < 0 || i >= len(entity.TierOrder)-1 {
		return "", false
	}
	return entity.TierOrder[i+1], true
}

// Eligibility clasifica un nivel mostrado frente al nivel actual del usuario.
// Un nivel desconocido se reporta como bloqueado.
func Eligibility(current, shown string) string {
	ci, si := entity.TierIndex(current), entity.TierIndex(shown)
	switch {
	case si < 0 || ci < 0:
		return EligibilityLocked
	case si == ci:
		return EligibilityCurrent
	case si > ci:
		return EligibilityUpgradeable
	default:
		return EligibilityLocked
	}
}

// Progress calcula el porcentaje de avance del usuario entre el umbral de su
// nivel actual y el del siguiente, recortado a [0,100].
//
//	progress = (points - umbralActual) / (umbralSiguiente - umbralActual) * 100
//
// Si no hay siguiente nivel (elite), el avance se reporta como 100.
// Es monótono no decreciente en points para un par de niveles fijo.
func Progress(points int64, current string) int {
	next, ok := NextTier(current)
	if !ok {
		return 100
	}
	cur, _ := entity.TierBenefitByName(current)
	nxt, _ := entity.TierBenefitByName(next)

	span := nxt.PointsThreshold - cur.PointsThreshold
	if span <= 0 {
		return 100
	}
	pct := (points - cur.PointsThreshold) * 100 / span
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}
