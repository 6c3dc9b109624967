package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artmarket_back_end/internal/services"
)

type PaymentHandler struct {
	Gateway services.OrderGateway
}

func NewPaymentHandler(gateway services.OrderGateway) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway}
}

// POST /createorder
// Transmet la commande à la passerelle et renvoie sa réponse telle
// quelle. Pas de retry : l'échec passerelle remonte en 500.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Receipt  string  `json:"receipt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if req.Amount <= 0 || req.Currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Montant ou devise manquant"})
		return
	}

	intent, err := h.Gateway.CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
	if err != nil {
		log.Println("❌ Création de commande échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Création de commande échouée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           intent.ID,
		"amount":       intent.Amount,
		"currency":     intent.Currency,
		"status":       intent.Status,
		"clientSecret": intent.ClientSecret,
	})
}
