package web

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/combat-companion/internal/combat"
	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
)

type fetchCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type maxHPRequest struct {
	MaxHP *int `json:"max_hp"`
}

type strategyRequest struct {
	Situation string `json:"situation"`
}

type strategyResponse struct {
	Strategy string `json:"strategy"`
}

func (h *Handler) apiDashboard(c *gin.Context) {
	out, err := h.dashboard.Render(c.Request.Context(), &dashboard.RenderInput{
		SessionID: sessionID(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.View)
}

func (h *Handler) apiFetchCharacter(c *gin.Context) {
	var req fetchCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	if _, err := h.dashboard.LoadCharacter(c.Request.Context(), &dashboard.LoadCharacterInput{
		SessionID:   sessionID(c),
		CharacterID: req.CharacterID,
	}); err != nil {
		h.writeError(c, err)
		return
	}

	h.apiDashboard(c)
}

func (h *Handler) apiSetMaxHP(c *gin.Context) {
	var req maxHPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	out, err := h.dashboard.SetMaxHP(c.Request.Context(), &dashboard.SetMaxHPInput{
		SessionID: sessionID(c),
		MaxHP:     req.MaxHP,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Vitality)
}

// apiClassify is stateless: the body is a character document and the
// response its combat options
func (h *Handler) apiClassify(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, loader.MaxUploadBytes))
	if err != nil {
		h.writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "could not read request body"))
		return
	}

	doc, err := loader.Normalize(body)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, combat.Classify(&doc.Character))
}

func (h *Handler) apiGenerateStrategy(c *gin.Context) {
	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	out, err := h.dashboard.GenerateStrategy(c.Request.Context(), &dashboard.GenerateStrategyInput{
		SessionID: sessionID(c),
		Situation: req.Situation,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, strategyResponse{Strategy: out.Strategy})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := errors.ToHTTP(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}
