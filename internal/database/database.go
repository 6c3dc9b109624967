package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Clients globaux, initialisés une fois au démarrage ---
// Les handlers ne les touchent jamais directement : main les injecte
// dans les stores et les middlewares.
var (
	Client *mongo.Client
	DB     *mongo.Database
	Redis  *redis.Client
)

// ConnectDatabases initialise MongoDB puis Redis.
// MongoDB est indispensable (fatal si absent), Redis ne sert qu'au
// rate limiting : en son absence on continue en mode dégradé.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Échec connexion MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB injoignable: %v", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "artmarket"
	}

	Client = client
	DB = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB :", uri, "(base:", dbName+")")
}

func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis non configuré (rate limiting désactivé) :", err)
		return
	}
	log.Println("✅ Connecté à Redis :", addr)
}
