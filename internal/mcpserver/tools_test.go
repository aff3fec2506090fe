package mcpserver

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvibe/internal/collection"
)

func newTools(t *testing.T) *ThemeTools {
	t.Helper()
	col, err := collection.Embedded()
	require.NoError(t, err)
	return NewThemeTools(col, collection.DefaultDeriveParams(), rand.New(rand.NewPCG(5, 6)))
}

func request(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func TestGetTools(t *testing.T) {
	tt := newTools(t)

	names := map[string]bool{}
	for _, tool := range tt.GetTools() {
		names[tool.Name] = true
	}
	assert.Equal(t, map[string]bool{
		"list_themes":   true,
		"get_theme":     true,
		"search_themes": true,
		"random_theme":  true,
	}, names)

	for _, st := range tt.ServerTools() {
		assert.NotNil(t, st.Handler, st.Tool.Name)
	}
}

func TestHandleListThemes(t *testing.T) {
	tt := newTools(t)

	result, err := tt.HandleListThemes(context.Background(), request("list_themes", map[string]interface{}{
		"filter": "light",
		"sorted": true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got struct {
		Themes []themeSummary `json:"themes"`
		Total  int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.Equal(t, len(got.Themes), got.Total)
	require.NotEmpty(t, got.Themes)
	for _, th := range got.Themes {
		assert.True(t, th.IsLight, th.Name)
		assert.Nil(t, th.Score)
	}
	for i := 1; i < len(got.Themes); i++ {
		assert.LessOrEqual(t, got.Themes[i-1].Name, got.Themes[i].Name)
	}
}

func TestHandleListThemesBadFilter(t *testing.T) {
	tt := newTools(t)
	result, err := tt.HandleListThemes(context.Background(), request("list_themes", map[string]interface{}{"filter": "dim"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleGetTheme(t *testing.T) {
	tt := newTools(t)

	result, err := tt.HandleGetTheme(context.Background(), request("get_theme", map[string]interface{}{"name": "Dracula"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var snap collection.Snapshot
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &snap))
	assert.Equal(t, "Dracula", snap.Name)
	assert.False(t, snap.IsLight)
	assert.Equal(t, "#282a36", snap.Background[1])
	assert.NotEmpty(t, snap.Comment)
	assert.NotEmpty(t, snap.Dim.Red)
	assert.NotEmpty(t, snap.Diff.Add)
	assert.NotEmpty(t, snap.CodeSelection[0])

	result, err = tt.HandleGetTheme(context.Background(), request("get_theme", map[string]interface{}{"name": "Dracula", "filter": "light"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = tt.HandleGetTheme(context.Background(), request("get_theme", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSearchThemes(t *testing.T) {
	tt := newTools(t)

	result, err := tt.HandleSearchThemes(context.Background(), request("search_themes", map[string]interface{}{
		"query": "drakula",
		"limit": float64(3),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got struct {
		Matches []themeSummary      `json:"matches"`
		Best    collection.Snapshot `json:"best"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	require.Len(t, got.Matches, 3)
	assert.Equal(t, "Dracula", got.Matches[0].Name)
	assert.Equal(t, "Dracula", got.Best.Name)
	require.NotNil(t, got.Matches[0].Score)
	assert.GreaterOrEqual(t, *got.Matches[0].Score, *got.Matches[1].Score)

	result, err = tt.HandleSearchThemes(context.Background(), request("search_themes", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSearchThemesRespectsFilter(t *testing.T) {
	tt := newTools(t)
	result, err := tt.HandleSearchThemes(context.Background(), request("search_themes", map[string]interface{}{
		"query":  "drakula",
		"filter": "light",
	}))
	require.NoError(t, err)

	var got struct {
		Matches []themeSummary      `json:"matches"`
		Best    collection.Snapshot `json:"best"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
	assert.True(t, got.Best.IsLight)
	for _, m := range got.Matches {
		assert.True(t, m.IsLight, m.Name)
	}
}

func TestHandleRandomTheme(t *testing.T) {
	tt := newTools(t)
	for range 10 {
		result, err := tt.HandleRandomTheme(context.Background(), request("random_theme", map[string]interface{}{"filter": "dark"}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var snap collection.Snapshot
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &snap))
		assert.False(t, snap.IsLight, snap.Name)
	}
}

func TestHandlersOnEmptyCollection(t *testing.T) {
	b, err := collection.Pack(nil)
	require.NoError(t, err)
	col, err := collection.New(b)
	require.NoError(t, err)
	tt := NewThemeTools(col, collection.DefaultDeriveParams(), nil)

	result, err := tt.HandleRandomTheme(context.Background(), request("random_theme", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = tt.HandleSearchThemes(context.Background(), request("search_themes", map[string]interface{}{"query": "x"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = tt.HandleListThemes(context.Background(), request("list_themes", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"total": 0`)
	assert.Contains(t, resultText(t, result), `"themes": []`)
}

func TestNewServer(t *testing.T) {
	s := NewServer("1.2.3", newTools(t))
	assert.NotNil(t, s)
}
