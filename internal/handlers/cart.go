package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artmarket_back_end/internal/models"
	"artmarket_back_end/internal/store"
)

var errItemNotFound = errors.New("article absent du panier")

type CartHandler struct {
	Carts store.CartStore
}

func NewCartHandler(carts store.CartStore) *CartHandler {
	return &CartHandler{Carts: carts}
}

// POST /cart
// Ajoute une ligne au panier de l'utilisateur (création du panier au
// premier ajout). Pas de déduplication : deux ajouts de la même œuvre
// donnent deux lignes.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req struct {
		UserID string  `json:"userId"`
		ArtID  string  `json:"artId"`
		Title  string  `json:"title"`
		Price  float64 `json:"price"`
		Image  string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if req.UserID == "" || req.ArtID == "" || req.Title == "" || req.Image == "" || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs manquants ou invalides"})
		return
	}

	item := models.CartItem{
		ArtID: req.ArtID,
		Title: req.Title,
		Price: req.Price,
		Image: req.Image,
	}

	created, err := h.Carts.AddItem(c.Request.Context(), req.UserID, item)
	if err != nil {
		log.Println("❌ Ajout au panier échoué :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	cart, err := h.Carts.Find(c.Request.Context(), req.UserID)
	if err != nil {
		log.Println("❌ Relecture du panier échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, cart)
}

// GET /api/cart/:userId
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.Carts.Find(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
			return
		}
		log.Println("❌ Lecture du panier échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	c.JSON(http.StatusOK, cart.Items)
}

// DELETE /api/cart/:userId/:artId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cartDeleted, remaining, err := h.removeItem(c.Request.Context(), c.Param("userId"), c.Param("artId"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		case errors.Is(err, errItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable dans le panier"})
		default:
			log.Println("❌ Retrait du panier échoué :", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		}
		return
	}

	if cartDeleted {
		c.JSON(http.StatusOK, gin.H{"message": "Dernier article retiré, panier supprimé", "deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article retiré", "items": remaining})
}

// DELETE /deletefromcart
// Lot de retraits indépendants. La réponse reste en 200 quoi qu'il
// arrive, mais chaque paire reçoit son résultat : pas d'échec partiel
// silencieux.
func (h *CartHandler) RemoveFromCartBatch(c *gin.Context) {
	var pairs []struct {
		UserID string `json:"userId"`
		ArtID  string `json:"artId"`
	}
	if err := c.ShouldBindJSON(&pairs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	results := make([]gin.H, 0, len(pairs))
	for _, p := range pairs {
		cartDeleted, _, err := h.removeItem(c.Request.Context(), p.UserID, p.ArtID)
		if err != nil {
			log.Printf("⚠️ Retrait %s/%s ignoré : %v", p.UserID, p.ArtID, err)
			results = append(results, gin.H{
				"userId":  p.UserID,
				"artId":   p.ArtID,
				"removed": false,
				"error":   err.Error(),
			})
			continue
		}
		results = append(results, gin.H{
			"userId":      p.UserID,
			"artId":       p.ArtID,
			"removed":     true,
			"cartDeleted": cartDeleted,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}

// removeItem retire toutes les lignes portant artID. Quand la dernière
// ligne part, le document panier part avec elle (panier vide == panier
// absent).
func (h *CartHandler) removeItem(ctx context.Context, userID, artID string) (cartDeleted bool, remaining []models.CartItem, err error) {
	cart, err := h.Carts.Find(ctx, userID)
	if err != nil {
		return false, nil, err
	}

	filtered := make([]models.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.ArtID != artID {
			filtered = append(filtered, it)
		}
	}
	if len(filtered) == len(cart.Items) {
		return false, nil, errItemNotFound
	}

	if len(filtered) == 0 {
		if err := h.Carts.Delete(ctx, userID); err != nil {
			return false, nil, err
		}
		return true, nil, nil
	}

	if err := h.Carts.ReplaceItems(ctx, userID, filtered); err != nil {
		return false, nil, err
	}
	return false, filtered, nil
}
