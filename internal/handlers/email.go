package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	// Send : injecté depuis utils.SendReferralEmail, remplacé dans les tests.
	Send func(referrerEmail, refereeEmail string) error
}

func NewEmailHandler(send func(referrerEmail, refereeEmail string) error) *EmailHandler {
	return &EmailHandler{Send: send}
}

// POST /sendemail
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req struct {
		ReferrerEmail string `json:"referrerEmail"`
		RefereeEmail  string `json:"refereeEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if req.ReferrerEmail == "" || req.RefereeEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les deux adresses e-mail sont obligatoires"})
		return
	}

	if err := h.Send(req.ReferrerEmail, req.RefereeEmail); err != nil {
		log.Println("❌ Envoi de l'e-mail échoué :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Envoi de l'e-mail échoué"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "E-mail envoyé"})
}
