package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/shared/middleware"
	"gallery-backend/internal/shared/response"
	"gallery-backend/pkg/container"
)

const graphqlPath = "/graphql"

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))

	router.POST(graphqlPath, c.GraphQLHandler.Post)
	router.GET(graphqlPath, c.GraphQLHandler.Get)

	if c.Config.GraphQL.Playground {
		router.GET("/", c.GraphQLHandler.Playground(c.Config.App.Name, graphqlPath))
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "route not found")
	})

	return router
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.HealthCheck(ctx); err != nil {
			response.ErrorWithDetails(c, http.StatusServiceUnavailable, "UNHEALTHY", "storage unavailable", err.Error())
			return
		}

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.Storage.Driver,
		}

		if authors, err := appCtx.AuthorRepo.Count(ctx); err == nil {
			health["authors"] = authors
		}
		if pictures, err := appCtx.PictureRepo.Count(ctx); err == nil {
			health["pictures"] = pictures
		}

		response.Success(c, http.StatusOK, health)
	}
}
