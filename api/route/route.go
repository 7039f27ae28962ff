package route

import (
	"time"

	"github.com/chainswap/chainswap-backend/api/middleware"
	"github.com/chainswap/chainswap-backend/api/route/route_plugin"
	"github.com/chainswap/chainswap-backend/bootstrap"
	"github.com/chainswap/chainswap-backend/mongo"
	"github.com/gin-gonic/gin"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	gin.Use(middleware.RequestID())
	gin.Use(middleware.JwtIdentity(env.AccessTokenSecret))

	group := gin.Group("/chainswap")

	route_plugin.NewParameterMapRouter(timeout, db, group)
	route_plugin.NewTranslationRouter(timeout, db, group)
	route_plugin.NewSwapRouter(timeout, db, group)
}
