package entity

import "github.com/shopspring/decimal"

// Niveles de membresía, en orden estricto: free < premium < professional < elite.
const (
	TierFree         = "free"
	TierPremium      = "premium"
	TierProfessional = "professional"
	TierElite        = "elite"
)

// TierOrder define el orden total de los cuatro niveles. El índice dentro de
// este arreglo es el que decide elegibilidad de upgrade (nunca downgrade).
var TierOrder = [4]string{TierFree, TierPremium, TierProfessional, TierElite}

// TierBenefit es la tarjeta estática de un nivel: metadatos de presentación,
// precio mensual, umbral de puntos de lealtad y lista ordenada de beneficios.
type TierBenefit struct {
	Name            string
	Label           string // nombre visible en la tarjeta
	Icon            string
	Highlight       bool // tarjeta destacada en la comparativa
	MonthlyPrice    decimal.Decimal
	PointsThreshold int64 // puntos de lealtad donde inicia el nivel
	Features        []string
}

// TierCatalog tabla estática de beneficios, una entrada por nivel y en el
// mismo orden que TierOrder.
var TierCatalog = [4]TierBenefit{
	{
		Name:            TierFree,
		Label:           "Free",
		Icon:            "star",
		MonthlyPrice:    decimal.Zero,
		PointsThreshold: 0,
		Features: []string{
			"Perfil público de creador",
			"Hasta 3 proyectos activos",
			"Estadísticas básicas",
		},
	},
	{
		Name:            TierPremium,
		Label:           "Premium",
		Icon:            "zap",
		MonthlyPrice:    decimal.NewFromFloat(9.99),
		PointsThreshold: 1000,
		Features: []string{
			"Proyectos ilimitados",
			"Estadísticas avanzadas",
			"Soporte por email",
			"Insignia Premium",
		},
	},
	{
		Name:            TierProfessional,
		Label:           "Professional",
		Icon:            "briefcase",
		Highlight:       true,
		MonthlyPrice:    decimal.NewFromFloat(24.99),
		PointsThreshold: 5000,
		Features: []string{
			"Todo lo de Premium",
			"Facturación y órdenes de compra",
			"Exportación de estados de cuenta",
			"Soporte prioritario",
		},
	},
	{
		Name:            TierElite,
		Label:           "Elite",
		Icon:            "crown",
		MonthlyPrice:    decimal.NewFromFloat(49.99),
		PointsThreshold: 15000,
		Features: []string{
			"Todo lo de Professional",
			"Gestor de cuenta dedicado",
			"Acceso anticipado a funciones",
			"Eventos exclusivos",
		},
	},
}

// TierIndex devuelve la posición del nivel en TierOrder, o -1 si no existe.
func TierIndex(name string) int {
	for i, t := range TierOrder {
		if t == name {
			return i
		}
	}
	return -1
}

// TierBenefitByName busca la tarjeta de un nivel. ok=false si el nombre no es válido.
func TierBenefitByName(name string) (TierBenefit, bool) {
	i := TierIndex(name)
	if i < 0 {
		return TierBenefit{}, false
	}
	return TierCatalog[i], true
}
