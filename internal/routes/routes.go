package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"artmarket_back_end/internal/handlers"
	"artmarket_back_end/internal/middleware"
)

// Handlers regroupe tout ce que RegisterRoutes doit câbler.
type Handlers struct {
	User    *handlers.UserHandler
	Listing *handlers.ListingHandler
	Cart    *handlers.CartHandler
	Payment *handlers.PaymentHandler
	Email   *handlers.EmailHandler
	Redis   *redis.Client
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(cors.New(corsConfig()))
	r.Use(middleware.SanitizePayload())
	r.Use(middleware.APIRateLimit(h.Redis))

	// Utilisateurs
	r.POST("/api/user", h.User.CreateUser)

	// Œuvres
	r.POST("/api/sell-art", h.Listing.CreateListing)
	r.PUT("/api/sell-art/:id", h.Listing.UpdateListing)
	r.GET("/api/art", h.Listing.GetAllListings)
	r.GET("/api/art/:id", h.Listing.GetListing)
	r.GET("/api/user/:UserId", h.Listing.GetListingsByUser)
	r.DELETE("/api/art/:id", h.Listing.DeleteListing)

	// Panier
	r.POST("/cart", middleware.CartRateLimit(h.Redis), h.Cart.AddToCart)
	r.GET("/api/cart/:userId", h.Cart.GetCart)
	r.DELETE("/api/cart/:userId/:artId", h.Cart.RemoveFromCart)
	r.DELETE("/deletefromcart", h.Cart.RemoveFromCartBatch)

	// Commande & notification
	r.POST("/createorder", h.Payment.CreateOrder)
	r.POST("/sendemail", h.Email.SendEmail)
}

// corsConfig n'autorise que les front-ends déployés (liste blanche
// via ALLOWED_ORIGINS, séparée par des virgules).
func corsConfig() cors.Config {
	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
