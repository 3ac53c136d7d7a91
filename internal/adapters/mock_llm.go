package adapters

import (
	"context"
	"log"
	"strings"
	"time"
)

// MockLLM simulates the completion service without the bill.
type MockLLM struct {
	Latency time.Duration
}

func (m *MockLLM) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	// Simulate generation latency
	select {
	case <-time.After(m.Latency):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	log.Printf("[MockLLM] Generating report for: %s", userInstruction)

	var b strings.Builder
	b.WriteString("This is a deterministic report from the mock provider.\n\n")
	for _, candidate := range []string{"Candidate A", "Candidate B"} {
		b.WriteString(candidate)
		b.WriteString(": ")
		b.WriteString(userInstruction)
		b.WriteString("\n")
	}
	b.WriteString("\nFinal Verdict: Candidate A.")
	return b.String(), nil
}

// Unavailable stands in for a provider that could not be built at startup.
// Every call fails with the construction error.
type Unavailable struct {
	Err error
}

func (u Unavailable) Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error) {
	return "", u.Err
}
