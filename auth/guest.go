package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/store"
)

const guestTokenTTL = 30 * 24 * time.Hour

// POST /auth/guest
//
// Provisions a fresh user record and issues a signed token for it. This is
// the explicit entry point of the lazy-provisioning flow: clients never sign
// up, they just ask for an identity.
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.GetOrCreateUser(db, uuid.Nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := issueGuestToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id": user.ID,
			"token":   token,
		})
	}
}

func issueGuestToken(id uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id.String(),
		"role":    "guest",
		"exp":     time.Now().Add(guestTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
