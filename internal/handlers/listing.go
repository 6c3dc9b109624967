package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"artmarket_back_end/internal/models"
	"artmarket_back_end/internal/services"
	"artmarket_back_end/internal/store"
)

// Dossier Cloudinary des images d'œuvres.
const listingFolder = "art-listings"

type ListingHandler struct {
	Listings store.ListingStore
	Users    store.UserStore
	Uploader services.Uploader
}

func NewListingHandler(listings store.ListingStore, users store.UserStore, uploader services.Uploader) *ListingHandler {
	return &ListingHandler{Listings: listings, Users: users, Uploader: uploader}
}

// POST /api/sell-art (multipart)
func (h *ListingHandler) CreateListing(c *gin.Context) {
	category := c.PostForm("category")
	title := c.PostForm("title")
	description := c.PostForm("description")
	priceStr := c.PostForm("price")
	userID := c.PostForm("userId")

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["images"]
	}

	if category == "" || title == "" || description == "" || priceStr == "" || userID == "" || len(files) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tous les champs sont obligatoires, au moins une image comprise"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Prix invalide"})
		return
	}

	// Clé informelle : on vérifie que le vendeur existe avant de publier
	if _, err := h.Users.FindByUserID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Vendeur inconnu"})
			return
		}
		log.Println("❌ Vérification vendeur échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	urls, err := h.Uploader.UploadImages(c.Request.Context(), listingFolder, files)
	if err != nil {
		log.Println("❌ Upload des images échoué :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'upload des images"})
		return
	}

	listing := &models.Listing{
		Category:    category,
		Title:       title,
		Description: description,
		Price:       price,
		Images:      urls,
		UserID:      userID,
	}

	if err := h.Listings.Insert(c.Request.Context(), listing); err != nil {
		log.Println("❌ Création de l'œuvre échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// PUT /api/sell-art/:id (multipart ou JSON)
// Remplacement complet de category/title/description/price/images.
// Si la requête porte des fichiers ils sont uploadés, sinon les URLs
// fournies par le client sont reprises telles quelles.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id := c.Param("id")

	var (
		category, title, description, priceStr string
		imageURLs                              []string
		files                                  []*multipart.FileHeader
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		category = c.PostForm("category")
		title = c.PostForm("title")
		description = c.PostForm("description")
		priceStr = c.PostForm("price")
		if form, err := c.MultipartForm(); err == nil {
			files = form.File["images"]
			imageURLs = form.Value["images"]
		}
	} else {
		var req struct {
			Category    string   `json:"category"`
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Price       float64  `json:"price"`
			Images      []string `json:"images"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requête invalide"})
			return
		}
		category = req.Category
		title = req.Title
		description = req.Description
		if req.Price != 0 {
			priceStr = strconv.FormatFloat(req.Price, 'f', -1, 64)
		}
		imageURLs = req.Images
	}

	if category == "" || title == "" || description == "" || priceStr == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tous les champs sont obligatoires"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Prix invalide"})
		return
	}

	existing, err := h.Listings.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Œuvre introuvable"})
			return
		}
		log.Println("❌ Lecture de l'œuvre échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	images := imageURLs
	if len(files) > 0 {
		images, err = h.Uploader.UploadImages(c.Request.Context(), listingFolder, files)
		if err != nil {
			log.Println("❌ Upload des images échoué :", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'upload des images"})
			return
		}
	}

	updated := &models.Listing{
		Category:    category,
		Title:       title,
		Description: description,
		Price:       price,
		Images:      images,
		UserID:      existing.UserID,
	}

	if err := h.Listings.Replace(c.Request.Context(), id, updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Œuvre introuvable"})
			return
		}
		log.Println("❌ Mise à jour de l'œuvre échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /api/art/:id
// L'œuvre est jointe à son vendeur : si le vendeur n'existe plus,
// la lecture échoue en 404 même si le document œuvre existe.
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.Listings.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Œuvre introuvable"})
			return
		}
		log.Println("❌ Lecture de l'œuvre échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	user, err := h.Users.FindByUserID(c.Request.Context(), listing.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendeur introuvable"})
			return
		}
		log.Println("❌ Lecture du vendeur échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"_id":         listing.ID,
		"category":    listing.Category,
		"title":       listing.Title,
		"description": listing.Description,
		"price":       listing.Price,
		"images":      listing.Images,
		"userId":      listing.UserID,
		"user":        user,
	})
}

// GET /api/art
func (h *ListingHandler) GetAllListings(c *gin.Context) {
	listings, err := h.Listings.FindAll(c.Request.Context())
	if err != nil {
		log.Println("❌ Lecture des œuvres échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GET /api/user/:UserId
func (h *ListingHandler) GetListingsByUser(c *gin.Context) {
	listings, err := h.Listings.FindByUserID(c.Request.Context(), c.Param("UserId"))
	if err != nil {
		log.Println("❌ Lecture des œuvres du vendeur échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// DELETE /api/art/:id
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.Listings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Œuvre introuvable"})
			return
		}
		log.Println("❌ Suppression de l'œuvre échouée :", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Œuvre supprimée"})
}
