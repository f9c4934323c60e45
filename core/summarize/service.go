// ABOUTME: Summary service applying the length policy around the summarization capability
// ABOUTME: Failures degrade to a placeholder string and never propagate to the caller

package summarize

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"validity-app-api/core/domain"
	"validity-app-api/core/errors"
	"validity-app-api/core/interfaces"
)

// FailurePrefix starts every placeholder returned in place of a summary
const FailurePrefix = "Summarization failed: "

// cacheTTL keeps summaries for a week; the source text is part of the key
const cacheTTL = 7 * 24 * time.Hour

// Service sizes and requests summaries
type Service struct {
	deps       interfaces.Dependencies
	summarizer interfaces.Summarizer
	policy     domain.LengthPolicy
}

// NewService creates a summary service. A nil summarizer means no credential was
// configured; every non-skipped request then degrades with a configuration error.
func NewService(deps interfaces.Dependencies, summarizer interfaces.Summarizer, policy domain.LengthPolicy) *Service {
	if policy == "" {
		policy = domain.LooseLength
	}
	return &Service{
		deps:       deps,
		summarizer: summarizer,
		policy:     policy,
	}
}

// Policy returns the configured length policy
func (s *Service) Policy() domain.LengthPolicy {
	return s.policy
}

// Summarize produces a summary of text. It never returns an error.
func (s *Service) Summarize(ctx context.Context, text string) domain.SummaryResult {
	plan := PlanSummaryLength(text, s.policy)
	result := domain.SummaryResult{
		TargetMinWords: plan.MinWords,
		TargetMaxWords: plan.MaxWords,
		SourceWords:    plan.Words,
	}

	if plan.Skip {
		result.SummaryText = text
		result.Skipped = true
		s.observe("skipped")
		return result
	}

	cacheKey := s.cacheKey(text, plan)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		s.observe("cached")
		return cached
	}

	summary, err := s.invoke(ctx, text, plan)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Summarization degraded", map[string]interface{}{
				"error":      err.Error(),
				"source_len": plan.Words,
				"min_words":  plan.MinWords,
				"max_words":  plan.MaxWords,
			})
		}
		reason := failureReason(err)
		result.SummaryText = FailurePrefix + reason
		result.Failed = true
		result.FailureReason = reason
		s.observe("failed")
		return result
	}

	result.SummaryText = summary
	s.toCache(ctx, cacheKey, result)
	s.observe("ok")
	return result
}

func (s *Service) invoke(ctx context.Context, text string, plan LengthPlan) (string, error) {
	if s.summarizer == nil {
		return "", &errors.ConfigurationError{Key: "HF_TOKEN", Message: "summarization credential is not configured"}
	}

	summary, err := s.summarizer.Summarize(ctx, text, plan.MinWords, plan.MaxWords)
	if err != nil {
		return "", &errors.SummarizationFailureError{Cause: err}
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", &errors.SummarizationFailureError{Cause: fmt.Errorf("empty summary returned")}
	}
	return summary, nil
}

// failureReason drops the summarization-failure wrapper so the placeholder reads once
func failureReason(err error) string {
	if failure, ok := err.(*errors.SummarizationFailureError); ok && failure.Cause != nil {
		return failure.Cause.Error()
	}
	return err.Error()
}

func (s *Service) cacheKey(text string, plan LengthPlan) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("summary:%s:%d:%d", hex.EncodeToString(sum[:]), plan.MinWords, plan.MaxWords)
}

func (s *Service) fromCache(ctx context.Context, key string) (domain.SummaryResult, bool) {
	if s.deps.Cache == nil {
		return domain.SummaryResult{}, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return domain.SummaryResult{}, false
	}
	var result domain.SummaryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.SummaryResult{}, false
	}
	return result, true
}

func (s *Service) toCache(ctx context.Context, key string, result domain.SummaryResult) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, cacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Debug("Failed to cache summary", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Service) observe(outcome string) {
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveSummary(outcome)
	}
}
