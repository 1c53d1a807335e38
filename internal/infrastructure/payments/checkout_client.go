// Package payments implementa el colaborador de pagos para upgrades de
// membresía contra el API REST del proveedor de checkout. El flujo en sí
// (tarjeta, 3DS, etc.) es del proveedor; aquí solo se inicia el cobro y se
// interpreta éxito o fallo.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/creatorhub/portal-api/internal/application/membership"
)

// Verificar en tiempo de compilación que CheckoutClient implementa PaymentGateway.
var _ membership.PaymentGateway = (*CheckoutClient)(nil)

// CheckoutClient adaptador del puerto membership.PaymentGateway.
// Usa net/http de la librería estándar de Go; no requiere SDK del proveedor.
type CheckoutClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCheckoutClient construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewCheckoutClient(baseURL, apiKey string) *CheckoutClient {
	return &CheckoutClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el flujo de upgrade no reintenta.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras del protocolo del proveedor ───────────────────────────────────

type chargeRequest struct {
	UserID      string          `json:"user_id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	CurrentTier string          `json:"current_tier"`
	TargetTier  string          `json:"target_tier"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

type chargeResponse struct {
	Status string `json:"status"` // "succeeded" | "declined"
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Charge inicia el cobro del upgrade. Un retorno nil equivale al callback de
// éxito del proveedor; cualquier error, al de fallo.
func (c *CheckoutClient) Charge(ctx context.Context, req membership.CheckoutRequest) error {
	if c.apiKey == "" || c.baseURL == "" {
		return fmt.Errorf("payments: proveedor no configurado (PAYMENTS_BASE_URL / PAYMENTS_API_KEY)")
	}

	body, err := json.Marshal(chargeRequest{
		UserID:      req.UserID,
		Email:       req.Email,
		Name:        req.Name,
		CurrentTier: req.CurrentTier,
		TargetTier:  req.TargetTier,
		Amount:      req.Amount,
		Currency:    "USD",
	})
	if err != nil {
		return fmt.Errorf("payments: marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("payments: crear request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("payments: llamada al proveedor: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("payments: leer respuesta: %w", err)
	}

	var out chargeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("payments: respuesta inválida (HTTP %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || out.Status != "succeeded" {
		if out.Error != nil {
			return fmt.Errorf("payments: %s: %s", out.Error.Code, out.Error.Message)
		}
		return fmt.Errorf("payments: cobro no completado (HTTP %d, status %q)", resp.StatusCode, out.Status)
	}
	return nil
}
