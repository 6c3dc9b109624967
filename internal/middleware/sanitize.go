package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// SanitizePayload retire des corps JSON les clés qui seraient
// interprétées par MongoDB (préfixe $, point dans le nom). Les valeurs
// ne sont pas touchées : seule l'injection d'opérateurs est neutralisée.
func SanitizePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}

		var payload interface{}
		if err := json.Unmarshal(bodyBytes, &payload); err == nil {
			if cleaned, err := json.Marshal(stripOperatorKeys(payload)); err == nil {
				bodyBytes = cleaned
			}
		}

		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		c.Request.ContentLength = int64(len(bodyBytes))
		c.Next()
	}
}

func stripOperatorKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
				continue
			}
			out[k] = stripOperatorKeys(child)
		}
		return out
	case []interface{}:
		for i := range val {
			val[i] = stripOperatorKeys(val[i])
		}
		return val
	default:
		return v
	}
}
