package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"microblog/internal/config"
	"microblog/internal/handlers"
	"microblog/internal/middleware"
	"microblog/internal/services"
	"microblog/internal/utils"
)

// RegisterRoutes wires middleware, handlers and gates onto the engine. All
// dependencies are constructed from the injected database handle and config;
// nothing is package-global.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.CORSOrigin},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	tokens := services.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	cache := utils.NewCache(500)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, tokens)
	postHandler := handlers.NewPostHandler(db, cache)
	commentHandler := handlers.NewCommentHandler(db, cache)
	voteHandler := handlers.NewVoteHandler(db, cache)

	// Ownership gates: posts resolve through their owner column, comments
	// through the authorship join record.
	postOwner := middleware.RequireOwner(services.PostOwnerResolver{DB: db})
	commentOwner := middleware.RequireOwner(services.CommentOwnerResolver{DB: db})

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/posts", postHandler.List)
		api.GET("/posts/comments/:id", commentHandler.List)
		api.GET("/posts/:id", postHandler.Detail)

		authorized := api.Group("/")
		authorized.Use(middleware.AuthRequired(tokens))
		{
			authorized.POST("/posts", postHandler.Create)
			authorized.POST("/posts/:id/vote/:direction", voteHandler.Cast)
			authorized.POST("/posts/comments/:id", commentHandler.Create)

			authorized.PUT("/posts/:id", postOwner, postHandler.Update)
			authorized.DELETE("/posts/:id", postOwner, postHandler.Delete)
			authorized.PUT("/posts/comments/:id", commentOwner, commentHandler.Update)
			authorized.DELETE("/posts/comments/:id", commentOwner, commentHandler.Delete)
		}
	}
}
