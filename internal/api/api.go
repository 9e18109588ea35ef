package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/lwc/internal/api/controller"
	"github.com/ougirez/lwc/internal/service/auth"
	"github.com/ougirez/lwc/internal/service/dashboard"
	"github.com/ougirez/lwc/internal/service/desserts"
	"github.com/ougirez/lwc/internal/service/places"
	"github.com/ougirez/lwc/internal/service/recommend"
	"github.com/ougirez/lwc/internal/service/stats"
)

type Services struct {
	Places    *places.Service
	Desserts  *desserts.Service
	Stats     *stats.Engine
	Recommend *recommend.Service
	Dashboard *dashboard.Service
	Auth      *auth.Service
}

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(services Services, allowOrigins []string) (*APIService, error) {
	if services.Auth == nil {
		return nil, errors.New("api: auth service is required")
	}

	svc := &APIService{router: echo.New(), authService: services.Auth}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.JSONSerializer = &sonicSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestID())
	svc.router.Use(requestContext)
	svc.router.Use(requestLogger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(controller.Deps{
		Places:    services.Places,
		Desserts:  services.Desserts,
		Stats:     services.Stats,
		Recommend: services.Recommend,
		Dashboard: services.Dashboard,
		Auth:      services.Auth,
	})

	api := svc.router.Group("/api/v1")
	api.GET("/health", cntrl.Health)

	admin := api.Group("/admin")
	admin.POST("/login", cntrl.LoginAdmin)
	admin.DELETE("/logout", cntrl.LogoutAdmin)

	placesGroup := api.Group("/places")
	placesGroup.GET("", cntrl.ListPlaces)
	placesGroup.GET("/markers", cntrl.ListPlaceMarkers)
	placesGroup.GET("/:id", cntrl.GetPlace)
	placesGroup.POST("", cntrl.CreatePlace, svc.AdminMiddleware)
	placesGroup.PUT("/:id", cntrl.UpdatePlace, svc.AdminMiddleware)
	placesGroup.DELETE("/:id", cntrl.DeletePlace, svc.AdminMiddleware)
	placesGroup.POST("/:id/reviews", cntrl.AddPlaceReview)
	placesGroup.GET("/:id/reviews/summary", cntrl.SummarizePlaceReviews)

	dessertsGroup := api.Group("/desserts")
	dessertsGroup.GET("", cntrl.ListDesserts)
	dessertsGroup.GET("/:id", cntrl.GetDessert)
	dessertsGroup.POST("", cntrl.CreateDessert, svc.AdminMiddleware)
	dessertsGroup.PUT("/:id", cntrl.UpdateDessert, svc.AdminMiddleware)
	dessertsGroup.DELETE("/:id", cntrl.DeleteDessert, svc.AdminMiddleware)
	dessertsGroup.POST("/:id/reviews", cntrl.AddDessertReview)
	dessertsGroup.GET("/:id/reviews/summary", cntrl.SummarizeDessertReviews)

	api.GET("/stats", cntrl.GetStats)
	api.GET("/dashboard", cntrl.GetDashboard)

	recommendations := api.Group("/recommendations")
	recommendations.POST("", cntrl.AskRecommendation)
	recommendations.GET("/latest", cntrl.LatestRecommendation)

	return svc, nil
}
