// Package web serves the journal UI: a trade entry form with the
// journal history alongside it.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mfeller/tradelog/config"
	"github.com/mfeller/tradelog/images"
	"github.com/mfeller/tradelog/journal"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	cfg    *config.Config
	store  journal.Store
	images *images.Store
	log    *zap.Logger
	engine *gin.Engine
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func New(cfg *config.Config, store journal.Store, imgs *images.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))

	funcs := template.FuncMap{
		"abs": func(x float64) float64 {
			if x < 0 {
				return -x
			}
			return x
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		cfg:    cfg,
		store:  store,
		images: imgs,
		log:    log,
		engine: engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/trades/:id", s.handleShow)
	s.engine.POST("/trades", s.handleSubmit)
	s.engine.POST("/trades/:id", s.handleSubmit)
	s.engine.POST("/trades/:id/delete", s.handleDelete)
	s.engine.GET("/images/:name", s.handleImage)
	s.engine.GET("/thumbs/:name", s.handleThumb)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run blocks serving the UI on the configured address.
func (s *Server) Run() error {
	s.log.Info("serving journal", zap.String("addr", s.cfg.Server.Addr))
	return s.engine.Run(s.cfg.Server.Addr)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
