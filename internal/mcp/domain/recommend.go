package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seoforge/auditdesk/internal/services/advisor"
)

// RecommendationGateway is the slice of the advisor the MCP tool needs.
type RecommendationGateway interface {
	Recommend(ctx context.Context, in advisor.Input) (string, error)
}

// AuditRecommendInput represents the MCP tool input for a recommendation.
// Field names mirror the HTTP recommendation request contract.
type AuditRecommendInput struct {
	Element     string `json:"element,omitempty" jsonschema:"name of the inspected element"`
	Category    string `json:"category,omitempty" jsonschema:"top-level issue category"`
	Subcategory string `json:"subcategory,omitempty" jsonschema:"issue sub-category"`
	Score       string `json:"score,omitempty" jsonschema:"normalized score (1-9 or N/A)"`
	Analysis    string `json:"analysis,omitempty" jsonschema:"auditor analysis of the finding"`
}

// AuditRecommendResult represents the MCP tool output for a recommendation.
type AuditRecommendResult struct {
	Recommendation string `json:"recommendation" jsonschema:"remediation guidance in Markdown"`
}

// AuditRecommendTool defines the MCP tool schema for a recommendation.
func AuditRecommendTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "audit_recommend",
		Description: "Generates implementation-ready remediation guidance for one audit finding using the configured language model.",
	}
}

// AuditRecommendHandler executes a recommendation request.
func AuditRecommendHandler(gateway RecommendationGateway) mcp.ToolHandlerFor[AuditRecommendInput, AuditRecommendResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AuditRecommendInput) (*mcp.CallToolResult, AuditRecommendResult, error) {
		if gateway == nil {
			return nil, AuditRecommendResult{}, fmt.Errorf("advisor service unavailable")
		}
		text, err := gateway.Recommend(ctx, advisor.Input{
			Element:     input.Element,
			Category:    input.Category,
			Subcategory: input.Subcategory,
			Score:       input.Score,
			Analysis:    input.Analysis,
		})
		if err != nil {
			return nil, AuditRecommendResult{}, fmt.Errorf("recommendation failed: %w", err)
		}
		return nil, AuditRecommendResult{Recommendation: text}, nil
	}
}
