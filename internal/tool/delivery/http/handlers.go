package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/pkg/response"
)

const defaultLanguage = "go"

// ListTools godoc
// @Summary     List available tools
// @Tags        Tools
// @Produce     json
// @Success     200 {object} listToolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	tools := h.registry.List()
	summaries := make([]toolSummary, len(tools))
	for i, tool := range tools {
		summaries[i] = toolSummary{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		}
	}
	response.OK(c, listToolsResp{Tools: summaries})
}

// ExecuteTool godoc
// @Summary     Execute a tool by name
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body executeToolReq true "Tool invocation"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown tool"
// @Router      /api/v1/tools/execute [POST]
func (h *handler) ExecuteTool(c *gin.Context) {
	ctx := c.Request.Context()

	var req executeToolReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tool, err := h.registry.Get(req.ToolName)
	if err != nil {
		response.NotFound(c, err)
		return
	}

	result, err := tool.Execute(ctx, req.Arguments)
	if err != nil {
		h.l.Errorf(ctx, "tool %s failed: %v", req.ToolName, err)
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ExecuteCode godoc
// @Summary     Execute a code snippet in the sandbox
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       body body executeCodeReq true "Code to execute"
// @Success     200 {object} executeCodeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tools/code/execute [POST]
func (h *handler) ExecuteCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req executeCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if req.Language != "" && req.Language != defaultLanguage {
		response.Error(c, fmt.Errorf("language %q not supported", req.Language))
		return
	}

	result := h.executor.Execute(ctx, req.Code, time.Duration(req.Timeout)*time.Second)
	response.OK(c, executeCodeResp{
		Success:       result.Success,
		Output:        result.Output,
		Error:         result.Error,
		ExecutionTime: result.ExecutionTime.Seconds(),
	})
}
