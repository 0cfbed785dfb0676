// Package advisor produces remediation recommendations for audit findings by
// proxying the Gemini generative-language API. Requests that need no model
// call (missing credentials, already-compliant rows) short-circuit locally.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

const (
	defaultModel = "gemini-2.0-flash"

	generationTemperature = 0.2
	maxOutputTokens       = 2048
)

// Config holds upstream credentials and generation settings.
type Config struct {
	APIKey          string
	Model           string
	SafetyThreshold string
}

// Generator is the slice of the Gemini client the advisor depends on.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Input describes one audit finding to generate a recommendation for. The
// JSON names are the recommendation request wire contract.
type Input struct {
	Element     string `json:"element"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Score       string `json:"score"`
	Analysis    string `json:"analysis"`
}

// Service generates recommendations for audit findings.
type Service struct {
	cfg       Config
	generator Generator
}

// New creates an advisor service. A nil generator is valid and reports the
// missing-credential state on every request.
func New(cfg Config, generator Generator) *Service {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	return &Service{cfg: cfg, generator: generator}
}

// Recommend returns remediation guidance for the finding. The returned text
// is always present and user-facing; a non-nil error marks it as a service
// failure rather than model output.
func (s *Service) Recommend(ctx context.Context, in Input) (string, error) {
	if s.generator == nil || strings.TrimSpace(s.cfg.APIKey) == "" {
		return "Recommendation generation is not configured. Set AUDITDESK_GEMINI_API_KEY to enable it.",
			fmt.Errorf("gemini api key is not configured")
	}

	if in.Score == inspection.TargetScore {
		element := strings.TrimSpace(in.Element)
		if element == "" {
			element = "This item"
		}
		return fmt.Sprintf("%s already meets the target score. No remediation is required; keep monitoring it in future audits.", element), nil
	}

	prompt := BuildPrompt(in)

	ctx, span := otel.Tracer("advisor").Start(ctx, "advisor.recommend")
	span.SetAttributes(attribute.String("gen_ai.request.model", s.cfg.Model))
	defer span.End()

	resp, err := s.generator.GenerateContent(ctx, s.cfg.Model, genai.Text(prompt), s.generationConfig())
	if err != nil {
		span.RecordError(err)
		return "The recommendation service could not reach the language model. Try again shortly.",
			fmt.Errorf("generate content: %w", err)
	}

	if text := extractText(resp); text != "" {
		return text, nil
	}
	return fmt.Sprintf("No recommendation text was returned by the model (finish reason: %s).", stopReason(resp)), nil
}

func (s *Service) generationConfig() *genai.GenerateContentConfig {
	threshold := parseThreshold(s.cfg.SafetyThreshold)
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](generationTemperature),
		MaxOutputTokens: maxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: threshold},
			{Category: genai.HarmCategoryHateSpeech, Threshold: threshold},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: threshold},
			{Category: genai.HarmCategoryDangerousContent, Threshold: threshold},
		},
	}
}

func parseThreshold(value string) genai.HarmBlockThreshold {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "BLOCK_LOW_AND_ABOVE":
		return genai.HarmBlockThresholdBlockLowAndAbove
	case "BLOCK_MEDIUM_AND_ABOVE":
		return genai.HarmBlockThresholdBlockMediumAndAbove
	case "BLOCK_ONLY_HIGH":
		return genai.HarmBlockThresholdBlockOnlyHigh
	default:
		return genai.HarmBlockThresholdBlockNone
	}
}

// extractText concatenates the text parts of the first candidate, falling
// back to the SDK aggregate when the candidate structure is unexpected.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		var b strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			return text
		}
	}
	return strings.TrimSpace(resp.Text())
}

// stopReason names why generation produced no text, for the diagnostic shown
// to the operator.
func stopReason(resp *genai.GenerateContentResponse) string {
	if resp != nil {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return string(resp.PromptFeedback.BlockReason)
		}
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			return string(resp.Candidates[0].FinishReason)
		}
	}
	return "unknown"
}
