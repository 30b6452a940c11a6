package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("  ", nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	g, err := NewMercadoPagoGateway("TEST-123", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.client == nil {
		t.Fatalf("expected sdk client")
	}

	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{`)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
