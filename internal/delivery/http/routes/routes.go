package routes

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/completion"
	"career-compass/internal/infrastructure/identity"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// Deps are the externally constructed collaborators the route tree needs.
// The completion client and identity verifier come in as interfaces so tests
// can run the full HTTP stack against fakes.
type Deps struct {
	Config      config.Config
	DB          database.DB
	Logger      *log.Logger
	Completions completion.Client
	Verifier    identity.Verifier
	Tokens      usecase.TokenStore
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(d.DB).RegisterRoutes(app)

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	predictionRepo := repository.NewPostgresPredictionRepository(d.DB)
	suggestionRepo := repository.NewPostgresSuggestionRepository(d.DB)

	authSvc := ucauth.NewService(userRepo, d.Verifier)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc, d.Tokens)
	recommendationUC := usecase.NewRecommendationUsecase(d.Completions, predictionRepo, suggestionRepo)

	api := app.Group("/api")

	handler.NewAuthHandler(authUC).RegisterRoutes(api)

	protected := api.Group("", authMw.Middleware())
	handler.NewCareerHandler(recommendationUC).RegisterRoutes(protected)
}
