package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/utils"
)

// AdminAuthMiddleware validates the admin token and stores the admin id,
// email and role on the context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)

		c.Next()
	}
}

// RequireRoles lets the request through only for the listed admin roles.
// super_admin is always allowed.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := map[string]bool{models.RoleSuperAdmin: true}
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString("adminRole")
		if role == "" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if !allowed[role] {
			log.Printf("[auth] role %q denied on %s %s", role, c.Request.Method, c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - insufficient role"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	id := c.GetString("adminID")
	return id, id != ""
}
