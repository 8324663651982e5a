package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"multi-agent-code-assistant/internal/agent"
	"multi-agent-code-assistant/pkg/response"
)

type agentSummary struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type agentDetail struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
}

type listAgentsResp struct {
	Agents []agentSummary `json:"agents"`
}

// ListAgents godoc
// @Summary     List available agent roles
// @Tags        Agents
// @Produce     json
// @Success     200 {object} listAgentsResp
// @Router      /api/v1/agents [GET]
func (h *handler) ListAgents(c *gin.Context) {
	roles := agent.Roles()
	agents := make([]agentSummary, len(roles))
	for i, role := range roles {
		agents[i] = agentSummary{
			Type:        string(role),
			Description: role.Description(),
		}
	}
	response.OK(c, listAgentsResp{Agents: agents})
}

// GetAgent godoc
// @Summary     Get details for one agent role
// @Tags        Agents
// @Produce     json
// @Param       type path string true "Agent role"
// @Success     200 {object} agentDetail
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/agents/{type} [GET]
func (h *handler) GetAgent(c *gin.Context) {
	role, err := agent.ParseRole(c.Param("type"))
	if err != nil {
		response.NotFound(c, fmt.Errorf("agent type %q not found", c.Param("type")))
		return
	}
	response.OK(c, agentDetail{
		Type:         string(role),
		Description:  role.Description(),
		Capabilities: role.Capabilities(),
	})
}
