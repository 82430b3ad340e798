package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeparse/backend/parser"
	"github.com/resumeparse/backend/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewParseResumeTool(parser.NewService(nil)))

	router := gin.New()
	NewServer(registry).RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleMCPInitialize(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, protocolVersion, result["protocolVersion"])
}

func TestHandleMCPToolsList(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"parse_resume"`)
	assert.Contains(t, w.Body.String(), `"inputSchema"`)
}

func TestHandleMCPToolsCall(t *testing.T) {
	router := newTestRouter()

	body := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"parse_resume","arguments":{"raw_text":"{\"skills\":[\"Go\"]}"}}}`
	w := postJSON(t, router, "/api/mcp", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	content, ok := result["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1)

	item, ok := content[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, item["text"], `"skills":["Go"]`)
}

func TestHandleMCPUnknownMethod(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":4,"method":"resources/list"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestHandleToolsCallUnknownTool(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp/tools/call", `{"name":"score_resume","arguments":{}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Contains(t, result.Content[0].Text, "tool not found")
}

func TestHandleToolsListRESTAlias(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp/tools/list", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result ToolsListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Tools, 1)
	assert.Equal(t, "parse_resume", result.Tools[0].Name)
}
