package service

import (
    "context"
    "crypto/rand"
    "encoding/hex"
)

// MockPayments is a stand-in payment provider that approves every charge
// and returns a random reference.  It satisfies booking.PaymentProvider so
// the engine's wiring does not change when a real gateway is integrated.
type MockPayments struct{}

// Charge always succeeds and returns a reference of the form "pay_<hex>".
func (MockPayments) Charge(_ context.Context, _ uint64, _ int64) (string, error) {
    buf := make([]byte, 12)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return "pay_" + hex.EncodeToString(buf), nil
}
