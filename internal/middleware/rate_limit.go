package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Limites par endpoint
	APIMaxRequests     = 100 // Par minute pour les endpoints généraux
	CartAddMaxRequests = 20  // Ajouts au panier par minute et par utilisateur

	APICooldown = 1 * time.Minute
)

// APIRateLimit limite le nombre de requêtes par IP (général).
// Si Redis est injoignable le compteur lit zéro : on laisse passer
// plutôt que de bloquer tout le trafic.
func APIRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()
		key := "api_requests:" + ip

		// Vérifier le nombre de requêtes dans la dernière minute
		requests, _ := rdb.Get(ctx, key).Int()
		if requests >= APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter le compteur
		pipe := rdb.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, APICooldown)
		pipe.Exec(ctx)

		// Ajouter les headers de rate limit
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", APIMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", APIMaxRequests-requests-1))

		c.Next()
	}
}

// CartRateLimit limite les ajouts au panier (anti-spam). Sans session,
// l'identité vient du corps de la requête : on lit le body sans le
// consommer, comme pour les limiteurs par email.
func CartRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			UserID string `json:"userId"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.UserID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "cart_add:" + input.UserID

		requests, _ := rdb.Get(ctx, key).Int()
		if requests >= CartAddMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop d'ajouts au panier. Ralentissez un peu",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter
		pipe := rdb.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 1*time.Minute)
		pipe.Exec(ctx)

		c.Next()
	}
}
