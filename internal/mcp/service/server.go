// Package service hosts the audit desk MCP server over stdio transport.
package service

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seoforge/auditdesk/internal/mcp/domain"
)

const (
	serverName    = "auditdesk"
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server bound to the audit and advisor services.
func New(audit domain.AuditGateway, recommender domain.RecommendationGateway) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.AuditListTool(), domain.AuditListHandler(audit))
	mcp.AddTool(mcpServer, domain.AuditUpdateFieldTool(), domain.AuditUpdateFieldHandler(audit))
	mcp.AddTool(mcpServer, domain.AuditPrioritizeTool(), domain.AuditPrioritizeHandler(audit))
	mcp.AddTool(mcpServer, domain.AuditRecommendTool(), domain.AuditRecommendHandler(recommender))

	mcpServer.AddResource(domain.ChecklistResource(), domain.ChecklistResourceHandler(audit))

	return &Server{mcpServer: mcpServer}
}

// Run serves MCP requests over stdio until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
