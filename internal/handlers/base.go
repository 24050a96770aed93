package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jwrfree/jatinotes-sub000/internal/middleware"
)

// Render helper to inject common variables like 'current user'. The
// injection happens on a copy so callers can hand over maps that also
// live in the page cache.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	data := make(gin.H, len(obj)+3)
	for k, v := range obj {
		data[k] = v
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		data["CurrentUser"] = user
		if count, ok := c.Get(middleware.UnreadCountKey); ok {
			data["UnreadCount"] = int(count.(int64))
		} else {
			data["UnreadCount"] = 0
		}
	}

	data["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, data)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
