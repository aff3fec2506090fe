package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tvibe/internal/collection"
	"tvibe/internal/fuzzy"
	"tvibe/pkg/logging"
)

const defaultSearchLimit = 10

// ThemeTools exposes the theme collection as MCP tools.
type ThemeTools struct {
	col    *collection.Collection
	params collection.DeriveParams
	rand   collection.RandSource
}

// NewThemeTools creates the tools over col. Derived colors use params. A nil
// r uses the process-wide random source.
func NewThemeTools(col *collection.Collection, params collection.DeriveParams, r collection.RandSource) *ThemeTools {
	return &ThemeTools{col: col, params: params, rand: r}
}

// GetTools returns all tool definitions
func (tt *ThemeTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		tt.listThemesTool(),
		tt.getThemeTool(),
		tt.searchThemesTool(),
		tt.randomThemeTool(),
	}
}

// ServerTools pairs every tool with its handler.
func (tt *ThemeTools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		"list_themes":   tt.HandleListThemes,
		"get_theme":     tt.HandleGetTheme,
		"search_themes": tt.HandleSearchThemes,
		"random_theme":  tt.HandleRandomTheme,
	}
	var out []server.ServerTool
	for _, tool := range tt.GetTools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

func filterOption() mcp.ToolOption {
	return mcp.WithString("filter",
		mcp.Description("Restrict to dark or light themes (default: any)"),
		mcp.Enum("any", "dark", "light"),
	)
}

func (tt *ThemeTools) listThemesTool() mcp.Tool {
	return mcp.NewTool("list_themes",
		mcp.WithDescription("List the names of all embedded terminal color themes"),
		filterOption(),
		mcp.WithBoolean("sorted",
			mcp.Description("Sort names alphabetically instead of storage order"),
			mcp.DefaultBool(false),
		),
	)
}

func (tt *ThemeTools) getThemeTool() mcp.Tool {
	return mcp.NewTool("get_theme",
		mcp.WithDescription("Get the full derived palette of a theme by exact name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Exact theme name"),
		),
		filterOption(),
	)
}

func (tt *ThemeTools) searchThemesTool() mcp.Tool {
	return mcp.NewTool("search_themes",
		mcp.WithDescription("Fuzzy search theme names; returns ranked matches and the best match's palette"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Approximate theme name"),
		),
		filterOption(),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of ranked matches (default: 10)"),
			mcp.DefaultNumber(defaultSearchLimit),
		),
	)
}

func (tt *ThemeTools) randomThemeTool() mcp.Tool {
	return mcp.NewTool("random_theme",
		mcp.WithDescription("Pick a random theme and return its full derived palette"),
		filterOption(),
	)
}

func parseFilter(req mcp.CallToolRequest) (collection.Filter, error) {
	return collection.ParseFilter(req.GetString("filter", "any"))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

type themeSummary struct {
	Name    string   `json:"name"`
	IsLight bool     `json:"is_light"`
	Score   *float64 `json:"score,omitempty"`
}

// HandleListThemes handles the list_themes tool call
func (tt *ThemeTools) HandleListThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := parseFilter(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	themes := []themeSummary{}
	for lt := range tt.col.Seq(filter) {
		themes = append(themes, themeSummary{Name: lt.Name(), IsLight: lt.IsLight()})
	}
	if req.GetBool("sorted", false) {
		sort.SliceStable(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	}

	return jsonResult(map[string]any{
		"themes": themes,
		"total":  len(themes),
	})
}

// HandleGetTheme handles the get_theme tool call
func (tt *ThemeTools) HandleGetTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	filter, err := parseFilter(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lt, ok := tt.col.ByName(name, filter)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Theme %q not found (filter %s)", name, filter)), nil
	}
	return jsonResult(lt.Theme().Snapshot(tt.params))
}

// HandleSearchThemes handles the search_themes tool call
func (tt *ThemeTools) HandleSearchThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}
	filter, err := parseFilter(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", defaultSearchLimit)
	if limit < 1 {
		limit = defaultSearchLimit
	}

	var candidates []collection.LazyTheme
	var names []string
	for lt := range tt.col.Seq(filter) {
		candidates = append(candidates, lt)
		names = append(names, lt.Name())
	}
	if len(candidates) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("No themes match filter %s", filter)), nil
	}

	ranked := fuzzy.Rank(names, query)
	matches := make([]themeSummary, 0, min(limit, len(ranked)))
	for _, m := range ranked[:min(limit, len(ranked))] {
		score := m.Score
		matches = append(matches, themeSummary{
			Name:    m.Value,
			IsLight: candidates[m.Index].IsLight(),
			Score:   &score,
		})
	}

	best := candidates[ranked[0].Index].Theme()
	logging.Debug("MCP", "search %q matched %s", query, best.Name)
	return jsonResult(map[string]any{
		"matches": matches,
		"best":    best.Snapshot(tt.params),
	})
}

// HandleRandomTheme handles the random_theme tool call
func (tt *ThemeTools) HandleRandomTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := parseFilter(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lt, ok := tt.col.Rand(tt.rand, filter)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No themes match filter %s", filter)), nil
	}
	return jsonResult(lt.Theme().Snapshot(tt.params))
}
