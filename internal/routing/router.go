// Package routing wires the middleware stack and the route table.
package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"starwars-blog/internal/handlers"
	"starwars-blog/internal/managers"
	"starwars-blog/internal/middleware"
	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

func InitRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) *gin.Engine {
	router := gin.New()
	setupCommonMiddleware(router)
	setupRoutes(router, databaseMgr, jwtMgr)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr) {
	// Sitemap: enumerate every registered route. Evaluated per request so it
	// sees the finished route table.
	router.GET("/", func(c *gin.Context) {
		routes := make([]schemas.RouteDTO, 0, len(router.Routes()))
		for _, route := range router.Routes() {
			routes = append(routes, schemas.RouteDTO{Method: route.Method, Path: route.Path})
		}
		utils.WriteAndLogResponse(c, &schemas.ResponseDTO{Message: routes, Status: true}, http.StatusOK)
	})

	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.GetPool().Ping(c); err != nil {
			c.String(http.StatusInternalServerError, "Database not responding")
			return
		}
		c.Status(http.StatusOK)
	})

	authHdl := handlers.NewAuthHandler(&databaseMgr, &jwtMgr)
	catalogHdl := handlers.NewCatalogHandler(&databaseMgr)
	favoriteHdl := handlers.NewFavoriteHandler(&databaseMgr)
	userHdl := handlers.NewUserHandler(&databaseMgr)

	authRoutes(router, authHdl, jwtMgr)
	catalogRoutes(router, catalogHdl)
	favoriteRoutes(router, favoriteHdl, jwtMgr)

	router.GET("/users", userHdl.ListUsers)
}

func authRoutes(router *gin.Engine, authHdl handlers.AuthHdl, jwtMgr managers.JWTMgr) {
	router.POST("/register", middleware.ValidateAndSanitizeStruct(func() any { return &schemas.RegistrationRequest{} }), authHdl.Register)
	router.POST("/login", middleware.ValidateAndSanitizeStruct(func() any { return &schemas.LoginRequest{} }), authHdl.Login)
	router.GET("/session", jwtMgr.JWTMiddleware(), authHdl.CheckSession)
}

func catalogRoutes(router *gin.Engine, catalogHdl handlers.CatalogHdl) {
	router.GET("/people/page/:"+utils.PageKey, catalogHdl.ListCharacters)
	router.GET("/people/:"+utils.CharacterIdKey, catalogHdl.GetCharacter)
	router.GET("/planets/page/:"+utils.PageKey, catalogHdl.ListPlanets)
	router.GET("/planet/:"+utils.PlanetIdKey, catalogHdl.GetPlanet)
}

func favoriteRoutes(router *gin.Engine, favoriteHdl handlers.FavoriteHdl, jwtMgr managers.JWTMgr) {
	favoritesRouter := router.Group("/users/favorites")
	favoritesRouter.Use(jwtMgr.JWTMiddleware())
	favoritesRouter.GET("", favoriteHdl.ListFavorites)
	favoritesRouter.POST("", middleware.ValidateAndSanitizeStruct(func() any { return &schemas.AddFavoriteRequest{} }), favoriteHdl.AddFavorite)

	router.DELETE("/favorite/:"+utils.FavoriteIdKey, jwtMgr.JWTMiddleware(),
		middleware.ValidateAndSanitizeStruct(func() any { return &schemas.RemoveFavoriteRequest{} }), favoriteHdl.RemoveFavorite)
}
