package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/search"
)

func registerTools(s *server.MCPServer, svc *arkham.Service) {
	// list_scenarios
	listTool := mcp.NewTool("list_scenarios",
		mcp.WithDescription("List all fan-created Arkham Horror LCG scenarios on arkhamcentral.com"),
	)
	s.AddTool(listTool, handleListScenarios(svc))

	// get_scenario
	getTool := mcp.NewTool("get_scenario",
		mcp.WithDescription("Get the HTML content of one scenario page by its id"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Scenario id (slug from list_scenarios)"),
		),
	)
	s.AddTool(getTool, handleGetScenario(svc))

	// search_content
	searchTool := mcp.NewTool("search_content",
		mcp.WithDescription("Search Arkham Horror LCG content by type and name. Only scenarios are available; card and investigator lookups are rejected."),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Object type: scenario, card, or investigator"),
		),
		mcp.WithString("name",
			mcp.Description("Name or partial name to match, case-insensitive. Empty returns everything."),
		),
	)
	s.AddTool(searchTool, handleSearchContent(svc))
}

func handleListScenarios(svc *arkham.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		scenarios, err := svc.ListScenarios(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(scenarios, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGetScenario(svc *arkham.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetString("id", "")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		detail, err := svc.GetScenario(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get error: %v", err)), nil
		}

		return mcp.NewToolResultText(detail.Content), nil
	}
}

func handleSearchContent(svc *arkham.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		typ, err := search.ParseQueryType(request.GetString("type", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results, err := search.Dispatch(ctx, svc, typ, request.GetString("name", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("search error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(results, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
