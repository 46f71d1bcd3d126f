package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/advisor"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard"
)

const genericErrorMessage = "Something went wrong. Please try again."

type pageData struct {
	View               *dashboard.View
	DefaultCharacterID string
	MaxSituationLength int
}

func (h *Handler) showDashboard(c *gin.Context) {
	out, err := h.dashboard.Render(c.Request.Context(), &dashboard.RenderInput{
		SessionID:    sessionID(c),
		ConsumeFlash: true,
	})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, genericErrorMessage)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", pageData{
		View:               out.View,
		DefaultCharacterID: h.defaultCharacterID,
		MaxSituationLength: advisor.MaxSituationLength,
	})
}

func (h *Handler) fetchCharacter(c *gin.Context) {
	out, err := h.dashboard.LoadCharacter(c.Request.Context(), &dashboard.LoadCharacterInput{
		SessionID:   sessionID(c),
		CharacterID: c.PostForm("character_id"),
	})
	if err != nil {
		h.redirectWithError(c, err)
		return
	}
	h.redirectWithFlash(c, dashboard.FlashSuccess, fmt.Sprintf("Loaded %s.", out.Name))
}

func (h *Handler) uploadCharacter(c *gin.Context) {
	header, err := c.FormFile("character_file")
	if err != nil {
		h.redirectWithFlash(c, dashboard.FlashError, "Choose a character JSON file to upload.")
		return
	}
	file, err := header.Open()
	if err != nil {
		h.redirectWithError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "could not read the uploaded file"))
		return
	}
	defer file.Close()

	out, err := h.dashboard.LoadCharacter(c.Request.Context(), &dashboard.LoadCharacterInput{
		SessionID: sessionID(c),
		Upload:    file,
		Filename:  header.Filename,
	})
	if err != nil {
		h.redirectWithError(c, err)
		return
	}
	h.redirectWithFlash(c, dashboard.FlashSuccess, fmt.Sprintf("Loaded %s from %s.", out.Name, header.Filename))
}

func (h *Handler) setMaxHP(c *gin.Context) {
	var maxHP *int
	if raw := strings.TrimSpace(c.PostForm("max_hp")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.redirectWithFlash(c, dashboard.FlashError, "Max HP must be a whole number.")
			return
		}
		maxHP = &n
	}

	if _, err := h.dashboard.SetMaxHP(c.Request.Context(), &dashboard.SetMaxHPInput{
		SessionID: sessionID(c),
		MaxHP:     maxHP,
	}); err != nil {
		h.redirectWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) generateStrategy(c *gin.Context) {
	if _, err := h.dashboard.GenerateStrategy(c.Request.Context(), &dashboard.GenerateStrategyInput{
		SessionID: sessionID(c),
		Situation: c.PostForm("situation"),
	}); err != nil {
		h.redirectWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/#advisor")
}

func (h *Handler) setAPIKey(c *gin.Context) {
	key := c.PostForm("api_key")
	if _, err := h.dashboard.SetAPIKey(c.Request.Context(), &dashboard.SetAPIKeyInput{
		SessionID: sessionID(c),
		APIKey:    key,
	}); err != nil {
		h.redirectWithError(c, err)
		return
	}

	msg := "API key saved for this session."
	if strings.TrimSpace(key) == "" {
		msg = "API key removed."
	}
	h.redirectWithFlash(c, dashboard.FlashSuccess, msg)
}

func (h *Handler) reset(c *gin.Context) {
	if _, err := h.dashboard.Reset(c.Request.Context(), &dashboard.ResetInput{
		SessionID: sessionID(c),
	}); err != nil {
		h.redirectWithError(c, err)
		return
	}
	h.redirectWithFlash(c, dashboard.FlashInfo, "Session cleared.")
}

func (h *Handler) redirectWithError(c *gin.Context, err error) {
	h.redirectWithFlash(c, dashboard.FlashError, h.userMessage(c, err))
}

// redirectWithFlash stores a one-shot message and sends the browser back to
// the dashboard
func (h *Handler) redirectWithFlash(c *gin.Context, level dashboard.FlashLevel, message string) {
	if _, err := h.dashboard.SetFlash(c.Request.Context(), &dashboard.SetFlashInput{
		SessionID: sessionID(c),
		Flash:     dashboard.Flash{Level: level, Message: message},
	}); err != nil {
		h.logger.WarnContext(c.Request.Context(), "failed to store flash", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// userMessage is the text shown for err. Internal failures are logged and
// replaced with a generic message.
func (h *Handler) userMessage(c *gin.Context, err error) string {
	if errors.GetCode(err) == errors.CodeInternal {
		_ = c.Error(err)
		return genericErrorMessage
	}
	msg := errors.GetMessage(err)
	if errors.IsFetchError(err) {
		return "Could not load the character: " + msg
	}
	if errors.IsGenerationError(err) {
		return "Could not generate a strategy: " + msg
	}
	return msg
}
