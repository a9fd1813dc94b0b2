package cmd

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VehanRajintha/vehan-dev/internal/blog"
	"github.com/VehanRajintha/vehan-dev/internal/config"
	"github.com/VehanRajintha/vehan-dev/internal/content"
	"github.com/VehanRajintha/vehan-dev/internal/contribs"
	"github.com/VehanRajintha/vehan-dev/internal/storage"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, "blog.db"))
		if err != nil {
			return err
		}
		defer db.Close()

		assets := contribs.NewAssetStore(cfg.AssetDir, log)
		defer assets.Close()

		r := buildRouter(cfg, db, assets, log)

		log.Info("serving portfolio", zap.String("port", cfg.Port))
		return r.Run(":" + cfg.Port)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func buildRouter(cfg config.Config, store storage.Storage, assets *contribs.AssetStore, log *zap.Logger) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"siteTitle":      cfg.SiteTitle,
			"aboutMeContent": content.AboutMe,
			"projects":       content.Projects,
			"blogs":          content.PublicBlogs,
		})
	})

	r.GET("/about", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"siteTitle":      cfg.SiteTitle,
			"aboutMeContent": content.AboutMe,
		})
	})

	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"siteTitle": cfg.SiteTitle,
			"projects":  content.Projects,
		})
	})

	r.GET("/projects/:slug", func(c *gin.Context) {
		project := content.ProjectBySlug(c.Param("slug"))
		if project == nil {
			c.HTML(http.StatusNotFound, "not-found.html", gin.H{
				"siteTitle": cfg.SiteTitle,
			})
			return
		}
		c.HTML(http.StatusOK, "project.html", gin.H{
			"siteTitle": cfg.SiteTitle,
			"project":   project,
		})
	})

	r.GET("/blogs", func(c *gin.Context) {
		c.HTML(http.StatusOK, "blogs.html", gin.H{
			"siteTitle": cfg.SiteTitle,
			"blogs":     content.PublicBlogs,
		})
	})

	r.GET("/blogs/private", func(c *gin.Context) {
		c.HTML(http.StatusOK, "private-blog.html", gin.H{
			"siteTitle": cfg.SiteTitle,
		})
	})

	r.GET("/resume", func(c *gin.Context) {
		c.HTML(http.StatusOK, "resume.html", gin.H{
			"siteTitle":      cfg.SiteTitle,
			"aboutMeContent": content.AboutMe,
			"certifications": content.Certifications,
		})
	})

	r.GET("/achievements", func(c *gin.Context) {
		c.HTML(http.StatusOK, "achievements.html", gin.H{
			"siteTitle":      cfg.SiteTitle,
			"certifications": content.Certifications,
		})
	})

	// Contributions: upstream proxy plus the analyzed viewer endpoint.
	service := contribs.NewService("", cfg.GithubUser, log)
	viewer := contribs.NewViewer(assets, service, cfg.GithubUser,
		time.Duration(cfg.MinLoadingMs)*time.Millisecond, log)
	contribs.NewHandler(service, viewer, log).Register(r)

	// Private blog API behind the shared-secret gate.
	blogStore := blog.NewStore(store, cfg.BlogPassword, log)
	blog.NewHandler(blogStore, log).Register(r)

	return r
}
