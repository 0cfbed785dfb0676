// Package domain defines MCP tool and resource bindings over the audit
// services.
package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

// ChecklistResourceURI addresses the prioritized checklist resource.
const ChecklistResourceURI = "audit://checklist"

// AuditGateway is the slice of the audit service the MCP tools need.
type AuditGateway interface {
	Load(ctx context.Context) ([]inspection.Row, error)
	UpdateField(ctx context.Context, id int, field string, value any) ([]inspection.Row, error)
	Checklist(ctx context.Context) ([]inspection.ChecklistRow, error)
	AutoPrioritize(ctx context.Context) ([]inspection.ChecklistRow, error)
}

// AuditListInput represents the MCP tool input for listing the dataset.
type AuditListInput struct{}

// AuditListResult represents the MCP tool output for listing the dataset.
type AuditListResult struct {
	Rows []inspection.Row `json:"rows" jsonschema:"audit dataset rows in stored order"`
}

// AuditListTool defines the MCP tool schema for listing the dataset.
func AuditListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "audit_list",
		Description: "Lists the technical SEO audit dataset, including scores, priorities, and completion state.",
	}
}

// AuditListHandler executes a dataset list request.
func AuditListHandler(gateway AuditGateway) mcp.ToolHandlerFor[AuditListInput, AuditListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AuditListInput) (*mcp.CallToolResult, AuditListResult, error) {
		if gateway == nil {
			return nil, AuditListResult{}, fmt.Errorf("audit service unavailable")
		}
		rows, err := gateway.Load(ctx)
		if err != nil {
			return nil, AuditListResult{}, fmt.Errorf("audit list failed: %w", err)
		}
		return nil, AuditListResult{Rows: rows}, nil
	}
}

// AuditUpdateFieldInput represents the MCP tool input for a single-field edit.
type AuditUpdateFieldInput struct {
	ID    int    `json:"id" jsonschema:"row identifier"`
	Field string `json:"field" jsonschema:"editable field name (score, check, or priority)"`
	Value any    `json:"value" jsonschema:"new field value"`
}

// AuditUpdateFieldResult represents the MCP tool output for a field edit.
type AuditUpdateFieldResult struct {
	Rows []inspection.Row `json:"rows" jsonschema:"audit dataset rows after the edit"`
}

// AuditUpdateFieldTool defines the MCP tool schema for a single-field edit.
func AuditUpdateFieldTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "audit_update_field",
		Description: "Updates one editable field (score, check, or priority) on an audit row. Scores are normalized to the 1-9 range or N/A. Unknown row ids leave the dataset unchanged.",
	}
}

// AuditUpdateFieldHandler executes a field edit request.
func AuditUpdateFieldHandler(gateway AuditGateway) mcp.ToolHandlerFor[AuditUpdateFieldInput, AuditUpdateFieldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AuditUpdateFieldInput) (*mcp.CallToolResult, AuditUpdateFieldResult, error) {
		if gateway == nil {
			return nil, AuditUpdateFieldResult{}, fmt.Errorf("audit service unavailable")
		}
		rows, err := gateway.UpdateField(ctx, input.ID, input.Field, input.Value)
		if err != nil {
			return nil, AuditUpdateFieldResult{}, fmt.Errorf("audit update failed: %w", err)
		}
		return nil, AuditUpdateFieldResult{Rows: rows}, nil
	}
}

// AuditPrioritizeInput represents the MCP tool input for auto-prioritization.
type AuditPrioritizeInput struct{}

// AuditPrioritizeResult represents the MCP tool output for auto-prioritization.
type AuditPrioritizeResult struct {
	Checklist []inspection.ChecklistRow `json:"checklist" jsonschema:"checklist rows ordered by assigned priority"`
}

// AuditPrioritizeTool defines the MCP tool schema for auto-prioritization.
func AuditPrioritizeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "audit_prioritize",
		Description: "Assigns severity-ranked priorities to every open audit row and returns the resulting checklist. Rows already at the target score are untouched.",
	}
}

// AuditPrioritizeHandler executes an auto-prioritization request.
func AuditPrioritizeHandler(gateway AuditGateway) mcp.ToolHandlerFor[AuditPrioritizeInput, AuditPrioritizeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AuditPrioritizeInput) (*mcp.CallToolResult, AuditPrioritizeResult, error) {
		if gateway == nil {
			return nil, AuditPrioritizeResult{}, fmt.Errorf("audit service unavailable")
		}
		checklist, err := gateway.AutoPrioritize(ctx)
		if err != nil {
			return nil, AuditPrioritizeResult{}, fmt.Errorf("audit prioritize failed: %w", err)
		}
		return nil, AuditPrioritizeResult{Checklist: checklist}, nil
	}
}

// ChecklistResource defines the MCP resource schema for the checklist view.
func ChecklistResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         ChecklistResourceURI,
		Name:        "audit-checklist",
		Description: "The prioritized technical SEO checklist: open findings ordered by priority, then severity.",
		MIMEType:    "application/json",
	}
}

// ChecklistResourceHandler serves checklist reads as a JSON document.
func ChecklistResourceHandler(gateway AuditGateway) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if gateway == nil {
			return nil, fmt.Errorf("audit service unavailable")
		}
		checklist, err := gateway.Checklist(ctx)
		if err != nil {
			return nil, fmt.Errorf("checklist read failed: %w", err)
		}
		payload, err := json.Marshal(checklist)
		if err != nil {
			return nil, fmt.Errorf("encode checklist: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: ChecklistResourceURI, MIMEType: "application/json", Text: string(payload)},
			},
		}, nil
	}
}
