package components

import (
	"spacehub/internal/pkg/clock"
	"spacehub/internal/usecase/commands"
	"spacehub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewHostReservationCommands,
		commands.NewReviewCommands,
		commands.NewReviewCommentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewHostReservationQueries,
		queries.NewReviewQueries,
	),
)
