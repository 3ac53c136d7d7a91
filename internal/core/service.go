package core

import (
	"context"
	"log"

	"github.com/RahulDoss/AI-Drug-and-vaccine-design/internal/core/domain"
)

type DiscoveryService struct {
	llm CompletionPort
}

func NewDiscoveryService(llm CompletionPort) *DiscoveryService {
	return &DiscoveryService{llm: llm}
}

// Discover builds the prompt pair and calls the completion provider exactly once.
func (s *DiscoveryService) Discover(ctx context.Context, req domain.DiscoveryRequest) (domain.DiscoveryResponse, error) {
	// 1. Prompt construction
	prompts := BuildPrompts(req)

	// 2. Completion (single shot, no retry)
	report, err := s.llm.Complete(ctx, prompts.System, prompts.User)
	if err != nil {
		log.Printf("[DiscoveryService] completion failed for mode %q: %v", req.Mode, err)
		return domain.DiscoveryResponse{}, &domain.UpstreamError{Err: err}
	}

	return domain.DiscoveryResponse{Mode: req.Mode, Report: report}, nil
}
