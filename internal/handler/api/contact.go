package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
}

func NewContactHandler(contactCommands commands.ContactCommands) *ContactHandler {
	return &ContactHandler{contactCommands: contactCommands}
}

// @Summary Send contact message
// @Description Relay a contact-form message to the hotel inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Message"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.contactCommands.SendContactMessage(c.Request.Context(), req); err != nil {
		if errors.Is(err, commands.ErrContactDelivery) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Message could not be delivered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
