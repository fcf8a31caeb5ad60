package service

import (
	"crypto/rand"
	"fmt"
)

const (
	// BookingRefPrefix prefixes booking reference codes
	BookingRefPrefix = "BK"
	// HireRefPrefix prefixes hire reference codes
	HireRefPrefix = "HR"

	refCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	refCodeLength   = 8

	// refCodeMaxAttempts bounds retries on a unique-constraint collision
	refCodeMaxAttempts = 3
)

// generateReferenceCode produces a human-presentable code like BK-7GQ2M9XD.
// Uniqueness is enforced by the database; callers retry on collision.
func generateReferenceCode(prefix string) (string, error) {
	buf := make([]byte, refCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reference code: %w", err)
	}
	for i, b := range buf {
		buf[i] = refCodeAlphabet[int(b)%len(refCodeAlphabet)]
	}
	return prefix + "-" + string(buf), nil
}
