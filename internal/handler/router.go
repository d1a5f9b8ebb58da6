package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spacehub/internal/domain/user"
	"spacehub/internal/handler/api"
	"spacehub/internal/handler/middleware"
	"spacehub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Availability  *api.AvailabilityHandler
	Reservation   *api.ReservationHandler
	Host          *api.HostHandler
	Review        *api.ReviewHandler
	ReviewComment *api.ReviewCommentHandler
	Upload        *api.UploadHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.Static("/uploads", cfg.Storage.UploadDir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodDelete, Path: "/me", Handler: h.Auth.Withdraw},
			})
		}

		uploads := apiGroup.Group("/uploads")
		uploads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(uploads, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Upload.Upload},
			})
		}

		spaces := apiGroup.Group("/spaces")
		spaces.Use(authMiddleware.RequireAuth())
		{
			addRoutes(spaces, []route{
				{Method: http.MethodGet, Path: "/:id/available-times/date", Handler: h.Availability.ListSlots},
				{
					Method: http.MethodPost, Path: "/:id/reservations",
					Handler: h.Reservation.Create,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleGuest)},
				},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleGuest))
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/current", Handler: h.Reservation.ListCurrent},
				{Method: http.MethodGet, Path: "/past", Handler: h.Reservation.ListPast},
				{Method: http.MethodGet, Path: "/status", Handler: h.Reservation.ListByStatus},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetByID},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleGuest))
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/reviewable", Handler: h.Review.ListReviewable},
				{Method: http.MethodGet, Path: "/written", Handler: h.Review.ListWritten},
				{Method: http.MethodGet, Path: "/reservation/:id", Handler: h.Review.GetReservationForReview},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.GetByID},
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}

		host := apiGroup.Group("/host")
		host.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleHost))
		{
			addRoutes(host, []route{
				{Method: http.MethodGet, Path: "/spaces", Handler: h.Host.ListSpaces},
				{Method: http.MethodGet, Path: "/spaces/:id/reservations", Handler: h.Host.ListBySpaceAndDate},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Host.ListByDate},
				{Method: http.MethodPatch, Path: "/reservations/:id/accept", Handler: h.Host.Accept},
				{Method: http.MethodPatch, Path: "/reservations/:id/reject", Handler: h.Host.Reject},
				{Method: http.MethodPost, Path: "/reviews/:id/comments", Handler: h.ReviewComment.Create},
				{Method: http.MethodPatch, Path: "/comments/:id", Handler: h.ReviewComment.Update},
				{Method: http.MethodDelete, Path: "/comments/:id", Handler: h.ReviewComment.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
