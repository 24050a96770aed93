package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/logger"
	"github.com/jwrfree/jatinotes-sub000/internal/middleware"
	"github.com/jwrfree/jatinotes-sub000/internal/router"
	"github.com/jwrfree/jatinotes-sub000/internal/utils"
)

func main() {
	log := logger.New()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, reading env vars from system")
	}

	db.Init(log)

	r := gin.Default()

	// Sessions for the admin area
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("jatinotes_session", store))

	r.HTMLRender = loadTemplates("./web/templates")

	r.Static("/static", "./web/static")

	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("Jati Notes server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"mul": func(a, b int) int {
			return a * b
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%ds ago", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%dm ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%dh ago", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%dd ago", seconds/86400)
			} else if seconds < 31536000 {
				return fmt.Sprintf("%d months ago", seconds/2592000)
			}
			return fmt.Sprintf("%d years ago", seconds/31536000)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"stripHTML": utils.StripTags,
	}

	// Blog
	r.AddFromFilesFuncs("blog/list.html", funcMap, assemble(templatesDir+"/views/blog/list.html")...)
	r.AddFromFilesFuncs("blog/detail.html", funcMap, assemble(templatesDir+"/views/blog/detail.html")...)

	// Books
	r.AddFromFilesFuncs("book/list.html", funcMap, assemble(templatesDir+"/views/book/list.html")...)
	r.AddFromFilesFuncs("book/detail.html", funcMap, assemble(templatesDir+"/views/book/detail.html")...)

	// Static pages
	r.AddFromFilesFuncs("page/show.html", funcMap, assemble(templatesDir+"/views/page/show.html")...)

	// Search
	r.AddFromFilesFuncs("search.html", funcMap, assemble(templatesDir+"/views/search.html")...)

	// Admin
	r.AddFromFilesFuncs("admin/login.html", funcMap, assemble(templatesDir+"/views/admin/login.html")...)
	r.AddFromFilesFuncs("admin/dashboard.html", funcMap, assemble(templatesDir+"/views/admin/dashboard.html")...)
	r.AddFromFilesFuncs("admin/notifications.html", funcMap, assemble(templatesDir+"/views/admin/notifications.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
