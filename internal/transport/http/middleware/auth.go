package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/iamasit07/hotseat-connect4/pkg/httputil"
	"github.com/iamasit07/hotseat-connect4/pkg/uid"
)

const ContextMatchID = "match_id"

// MatchTokenMiddleware lets a request through only when its match token was
// issued for the :id in the path. Handlers read the match ID back from
// ContextMatchID.
func MatchTokenMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 0. No token can match an ID we never issue
		if !uid.IsMatchID(c.Param("id")) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}

		// 1. Extract Token (Header or Query)
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// 2. Validate JWT Signature
		claims, err := tokens.ValidateMatchToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// 3. Token must belong to this match
		if claims.MatchID != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token does not grant access to this match"})
			return
		}

		c.Set(ContextMatchID, claims.MatchID)
		c.Next()
	}
}
