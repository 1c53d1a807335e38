package membership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/membership"
)

// El orden de niveles debe ser un orden total estricto: free(0) < premium(1)
// < professional(2) < elite(3).
func TestTierIndex_OrdenTotal(t *testing.T) {
	assert.Equal(t, 0, entity.TierIndex(entity.TierFree))
	assert.Equal(t, 1, entity.TierIndex(entity.TierPremium))
	assert.Equal(t, 2, entity.TierIndex(entity.TierProfessional))
	assert.Equal(t, 3, entity.TierIndex(entity.TierElite))
	assert.Equal(t, -1, entity.TierIndex("platinum"), "nivel inexistente debe dar -1")
}

// Los umbrales del catálogo deben crecer junto con el orden de niveles.
func TestTierCatalog_UmbralesCrecientes(t *testing.T) {
	for i := 1; i < len(entity.TierCatalog); i++ {
		assert.Greater(t, entity.TierCatalog[i].PointsThreshold, entity.TierCatalog[i-1].PointsThreshold,
			"el umbral de %s debe superar al de %s", entity.TierCatalog[i].Name, entity.TierCatalog[i-1].Name)
	}
}

func TestNextTier(t *testing.T) {
	next, ok := membership.NextTier(entity.TierFree)
	require.True(t, ok)
	assert.Equal(t, entity.TierPremium, next)

	next, ok = membership.NextTier(entity.TierProfessional)
	require.True(t, ok)
	assert.Equal(t, entity.TierElite, next)

	// elite no tiene sucesor
	_, ok = membership.NextTier(entity.TierElite)
	assert.False(t, ok, "next-tier(elite) debe ser ninguno")

	_, ok = membership.NextTier("desconocido")
	assert.False(t, ok)
}

// Escenario del diseño: puntos = umbral(premium) → 0%; puntos >= umbral(professional) → 100%.
func TestProgress_EscenarioPremium(t *testing.T) {
	premium, _ := entity.TierBenefitByName(entity.TierPremium)
	professional, _ := entity.TierBenefitByName(entity.TierProfessional)

	assert.Equal(t, 0, membership.Progress(premium.PointsThreshold, entity.TierPremium),
		"en el umbral exacto del nivel actual el avance es 0")
	assert.Equal(t, 100, membership.Progress(professional.PointsThreshold, entity.TierPremium),
		"al alcanzar el umbral del siguiente nivel el avance se recorta a 100")
	assert.Equal(t, 100, membership.Progress(professional.PointsThreshold+9999, entity.TierPremium))
}

// El avance recorta por abajo: puntos por debajo del umbral actual no dan negativo.
func TestProgress_RecorteInferior(t *testing.T) {
	premium, _ := entity.TierBenefitByName(entity.TierPremium)
	assert.Equal(t, 0, membership.Progress(premium.PointsThreshold-500, entity.TierPremium))
}

// Monotonía: para un par de niveles fijo, más puntos nunca reducen el avance.
func TestProgress_MonotonoNoDecreciente(t *testing.T) {
	prev := -1
	for points := int64(0); points <= 20000; points += 250 {
		pct := membership.Progress(points, entity.TierPremium)
		require.GreaterOrEqual(t, pct, prev, "avance en points=%d retrocedió", points)
		require.GreaterOrEqual(t, pct, 0)
		require.LessOrEqual(t, pct, 100)
		prev = pct
	}
}

// Elite no tiene siguiente nivel: el avance se trata como 100.
func TestProgress_EliteSiempre100(t *testing.T) {
	assert.Equal(t, 100, membership.Progress(0, entity.TierElite))
	assert.Equal(t, 100, membership.Progress(999999, entity.TierElite))
}

func TestEligibility(t *testing.T) {
	// mismo índice → current (deshabilitada)
	assert.Equal(t, membership.EligibilityCurrent, membership.Eligibility(entity.TierPremium, entity.TierPremium))
	// índice menor → locked (sin camino de downgrade)
	assert.Equal(t, membership.EligibilityLocked, membership.Eligibility(entity.TierPremium, entity.TierFree))
	// índice estrictamente mayor → upgradeable
	assert.Equal(t, membership.EligibilityUpgradeable, membership.Eligibility(entity.TierPremium, entity.TierElite))
	// nivel desconocido → locked
	assert.Equal(t, membership.EligibilityLocked, membership.Eligibility(entity.TierPremium, "platinum"))
}
