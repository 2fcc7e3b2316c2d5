package handler

import (
	"net/http"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/gin-gonic/gin"
)

// AddMessage godoc
// @Summary Add a message
// @Description Stores a message between two contacts with status sent
// @Tags Messages
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param message body domain.MessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} map[string][]string
// @Failure 422 {string} string
// @Router /api/message [post]
func (h *Handler) addMessage(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		respondError(c, domain.BadRequest("Malformed request body"))
		return
	}
	if errs := h.validator.Validate(payload, domain.MessageCreateRules); errs != nil {
		respondError(c, domain.BadRequest(errs))
		return
	}

	in, err := messageInput(payload)
	if err != nil {
		respondError(c, domain.BadRequest(err.Error()))
		return
	}
	// status is not writable on creation
	in.Status = nil

	msg, err := h.messageSvc.Add(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, msg)
}

// GetMessage godoc
// @Summary Get a message
// @Tags Messages
// @Produce json
// @Param messageId path int true "Message ID"
// @Success 200 {object} domain.Message
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /api/message/{messageId} [get]
func (h *Handler) getMessage(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	msg, err := h.messageSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msg)
}

// UpdateMessage godoc
// @Summary Update a message
// @Description Updates only the provided fields
// @Tags Messages
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param messageId path int true "Message ID"
// @Param message body domain.MessageRequest true "Fields to update"
// @Success 200 {object} domain.Message
// @Failure 400 {object} map[string][]string
// @Failure 404 {string} string
// @Failure 422 {string} string
// @Router /api/message/{messageId} [patch]
func (h *Handler) updateMessage(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	payload, err := readPayload(c)
	if err != nil {
		respondError(c, domain.BadRequest("Malformed request body"))
		return
	}
	if errs := h.validator.ValidatePresent(payload, domain.MessageUpdateRules); errs != nil {
		respondError(c, domain.BadRequest(errs))
		return
	}

	in, err := messageInput(payload)
	if err != nil {
		respondError(c, domain.BadRequest(err.Error()))
		return
	}

	msg, err := h.messageSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msg)
}

// DeleteMessage godoc
// @Summary Delete a message
// @Tags Messages
// @Produce json
// @Param messageId path int true "Message ID"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /api/message/{messageId} [delete]
func (h *Handler) deleteMessage(c *gin.Context) {
	id, ok := messageID(c)
	if !ok {
		return
	}

	if err := h.messageSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Message deleted")
}

// messageID reads the messageId path parameter, responding 400 when it is missing or malformed
func messageID(c *gin.Context) (uint, bool) {
	raw := c.Param("messageId")
	if raw == "" {
		respondError(c, domain.BadRequest("Parameter messageId is required"))
		return 0, false
	}

	id, err := parseID(raw)
	if err != nil || id == 0 {
		respondError(c, domain.BadRequest("Parameter messageId must be a positive integer"))
		return 0, false
	}

	return id, true
}
