// Package server serves rendered card faces over HTTP.
package server

import (
	"bytes"
	"image/png"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/raster"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/arcanaland/cardface/internal/theme"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CardQuery holds the optional query parameters of a card request
type CardQuery struct {
	Width  float64 `form:"width" binding:"omitempty,gt=0,lte=2000"`
	Height float64 `form:"height" binding:"omitempty,gt=0,lte=2000"`
	Scale  float64 `form:"scale" binding:"omitempty,gt=0,lte=8"`
}

// Server renders cards with a fixed theme
type Server struct {
	theme *theme.Theme
	log   *zap.Logger
}

// New creates a server. A nil theme means the built-in one.
func New(th *theme.Theme, log *zap.Logger) *Server {
	if th == nil {
		th = theme.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{theme: th, log: log}
}

// Router builds the gin engine with CORS and request logging
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "theme": s.theme.Info.ID})
	})

	api := r.Group("/cards")
	{
		api.GET("", s.listCards)
		api.GET("/:card", s.getCard)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) listCards(c *gin.Context) {
	type entry struct {
		Code string `json:"code"`
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	cards := card.All()
	out := make([]entry, 0, len(cards))
	for _, cd := range cards {
		out = append(out, entry{Code: cd.Code(), ID: cd.ID(), Name: cd.Name()})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// getCard serves /cards/QH.svg, /cards/hearts.queen.png and so on. Without
// a known extension the card is served as SVG.
func (s *Server) getCard(c *gin.Context) {
	name := c.Param("card")
	ext := path.Ext(name)
	switch ext {
	case ".svg", ".png", ".json", ".yaml":
		name = strings.TrimSuffix(name, ext)
	default:
		ext = ".svg"
	}

	cd, err := card.Parse(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var q CardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	props := scene.Props{
		Suit:   cd.Suit,
		Rank:   cd.Rank,
		Width:  s.theme.Card.Width,
		Height: s.theme.Card.Height,
	}
	if q.Width > 0 {
		props.Width = q.Width
	}
	if q.Height > 0 {
		props.Height = q.Height
	}
	if err := props.CheckSize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	root := scene.Render(props, s.theme)

	switch ext {
	case ".json":
		c.JSON(http.StatusOK, root)

	case ".yaml":
		out, err := yaml.Marshal(root)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/yaml", out)

	case ".png":
		scale := q.Scale
		if scale == 0 {
			scale = 1
		}
		img, err := raster.Render(root, scale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())

	default:
		var buf bytes.Buffer
		if err := scene.EncodeSVG(&buf, root); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
	}
}
