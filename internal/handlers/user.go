package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artmarket_back_end/internal/models"
	"artmarket_back_end/internal/store"
)

type UserHandler struct {
	Users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// POST /api/user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		UserID   string `json:"UserId"`
		FullName string `json:"fullName"`
		Email    string `json:"Email"`
		ImageURL string `json:"imageurl"`
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requête invalide"})
		return
	}

	if req.UserID == "" || req.FullName == "" || req.Email == "" || req.Username == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tous les champs sont obligatoires"})
		return
	}

	user := &models.User{
		UserID:   req.UserID,
		FullName: req.FullName,
		Email:    req.Email,
		ImageURL: req.ImageURL,
		Username: req.Username,
	}

	if err := h.Users.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Utilisateur déjà enregistré"})
			return
		}
		log.Println("❌ Création utilisateur échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusCreated, user)
}
