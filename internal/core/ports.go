package core

import (
	"context"

	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core/domain"
)

// --- Ports (Interfaces) ---

// CompletionPort defines the contract for external chat-completion providers.
// Model, temperature and token bound are fixed when the adapter is built.
type CompletionPort interface {
	Complete(ctx context.Context, systemInstruction, userInstruction string) (string, error)
}

// DiscoveryServicePort defines the main entry point for the business logic.
type DiscoveryServicePort interface {
	Discover(ctx context.Context, req domain.DiscoveryRequest) (domain.DiscoveryResponse, error)
}
