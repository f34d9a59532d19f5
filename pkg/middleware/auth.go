package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const UserCtx = "userId"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user id is required in 'X-User-ID' header"})
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(userID, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid 'X-User-ID' header"})
			c.Abort()
			return
		}

		logrus.Infof("AuthMiddleware: user_id: %s", userID)
		c.Set(UserCtx, id)
		c.Next()
	}
}
