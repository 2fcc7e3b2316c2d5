package handler

import (
	"net/http"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/gin-gonic/gin"
)

// AddContact godoc
// @Summary Add a contact
// @Description Creates a contact unless one with the same phone number exists
// @Tags Contacts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param contact body domain.ContactRequest true "Contact"
// @Success 201 {object} domain.Contact
// @Failure 400 {object} map[string][]string
// @Failure 409 {string} string
// @Router /api/contact [post]
func (h *Handler) addContact(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		respondError(c, domain.BadRequest("Malformed request body"))
		return
	}
	if errs := h.validator.Validate(payload, domain.ContactCreateRules); errs != nil {
		respondError(c, domain.BadRequest(errs))
		return
	}

	contact, err := h.contactSvc.Add(c.Request.Context(), contactInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, contact)
}

// GetContact godoc
// @Summary Get a contact
// @Tags Contacts
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {object} domain.Contact
// @Failure 404 {string} string
// @Router /api/contact/{phoneNumber} [get]
func (h *Handler) getContact(c *gin.Context) {
	contact, err := h.contactSvc.Get(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, contact)
}

// UpdateContact godoc
// @Summary Update a contact
// @Description Updates only the provided fields
// @Tags Contacts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Param contact body domain.ContactRequest true "Fields to update"
// @Success 200 {object} domain.Contact
// @Failure 400 {object} map[string][]string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Router /api/contact/{phoneNumber} [patch]
func (h *Handler) updateContact(c *gin.Context) {
	payload, err := readPayload(c)
	if err != nil {
		respondError(c, domain.BadRequest("Malformed request body"))
		return
	}
	if errs := h.validator.ValidatePresent(payload, domain.ContactUpdateRules); errs != nil {
		respondError(c, domain.BadRequest(errs))
		return
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), c.Param("phoneNumber"), contactInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Description Deletes the contact with the messages it sent. Messages it received lose their receiver.
// @Tags Contacts
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /api/contact/{phoneNumber} [delete]
func (h *Handler) deleteContact(c *gin.Context) {
	if err := h.contactSvc.Delete(c.Request.Context(), c.Param("phoneNumber")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Contact deleted")
}

// GetAllMessages godoc
// @Summary Get messages of a contact
// @Description Lists messages sent or received by the contact
// @Tags Contacts
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {array} domain.Message
// @Failure 404 {string} string
// @Router /api/contact/messages/{phoneNumber} [get]
func (h *Handler) getAllMessages(c *gin.Context) {
	h.contactMessages(c, domain.RoleAny)
}

// GetAllMessagesSentByContact godoc
// @Summary Get messages sent by a contact
// @Tags Contacts
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {array} domain.Message
// @Failure 404 {string} string
// @Router /api/contact/messages/sent/{phoneNumber} [get]
func (h *Handler) getAllMessagesSentByContact(c *gin.Context) {
	h.contactMessages(c, domain.RoleSender)
}

// GetAllMessagesReceivedByContact godoc
// @Summary Get messages received by a contact
// @Tags Contacts
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {array} domain.Message
// @Failure 404 {string} string
// @Router /api/contact/messages/received/{phoneNumber} [get]
func (h *Handler) getAllMessagesReceivedByContact(c *gin.Context) {
	h.contactMessages(c, domain.RoleReceiver)
}

func (h *Handler) contactMessages(c *gin.Context, role domain.MessageRole) {
	msgs, err := h.contactSvc.Messages(c.Request.Context(), c.Param("phoneNumber"), role)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, msgs)
}
