package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"artmarket_back_end/internal/config"
	"artmarket_back_end/internal/database"
	"artmarket_back_end/internal/handlers"
	"artmarket_back_end/internal/routes"
	"artmarket_back_end/internal/services"
	"artmarket_back_end/internal/store"
	"artmarket_back_end/internal/utils"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	uploader, err := services.NewCloudinaryUploader()
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser Cloudinary : %v", err)
	}
	log.Println("✅ Cloudinary initialisé")

	database.ConnectDatabases()

	st := store.NewMongo(database.DB)
	if err := st.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("❌ Échec création des index: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Handlers{
		User:    handlers.NewUserHandler(st.Users),
		Listing: handlers.NewListingHandler(st.Listings, st.Users, uploader),
		Cart:    handlers.NewCartHandler(st.Carts),
		Payment: handlers.NewPaymentHandler(services.StripeGateway{}),
		Email:   handlers.NewEmailHandler(utils.SendReferralEmail),
		Redis:   database.Redis,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur ArtMarket lancé sur le port", port)
	r.Run(":" + port)
}
