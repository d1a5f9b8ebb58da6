package components

import (
	"spacehub/internal/handler"
	"spacehub/internal/handler/api"
	"spacehub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewHostHandler,
		api.NewReviewHandler,
		api.NewReviewCommentHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	host *api.HostHandler,
	review *api.ReviewHandler,
	reviewComment *api.ReviewCommentHandler,
	upload *api.UploadHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Availability:  availability,
		Reservation:   reservation,
		Host:          host,
		Review:        review,
		ReviewComment: reviewComment,
		Upload:        upload,
	}
}
