package route_plugin

import (
	"time"

	"github.com/chainswap/chainswap-backend/api/controller/controller_plugin"
	"github.com/chainswap/chainswap-backend/domain"
	"github.com/chainswap/chainswap-backend/mongo"
	"github.com/chainswap/chainswap-backend/repository/repository_plugin"
	"github.com/chainswap/chainswap-backend/usecase/usecase_plugin"
	"github.com/gin-gonic/gin"
)

func NewParameterMapRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repoMaps := repository_plugin.NewParameterMapRepository(db, domain.CollectionPluginParameterMaps)
	repoSemantics := repository_plugin.NewParameterSemanticRepository(db, domain.CollectionPluginParameterSemantics)
	uc := usecase_plugin.NewParameterMapUsecase(repoMaps, repoSemantics, timeout)
	ctrl := controller_plugin.NewParameterMapController(uc)

	group.GET("/plugins/:plugin_id/parameter_map", ctrl.GetParameterMapHandler)
	group.PUT("/plugins/:plugin_id/parameter_map", ctrl.UpsertParameterMapHandler)
	group.DELETE("/plugins/:plugin_id/parameter_map", ctrl.DeleteParameterMapHandler)
	group.GET("/semantics", ctrl.GetSemanticsHandler)
}

func NewTranslationRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repoMaps := repository_plugin.NewParameterMapRepository(db, domain.CollectionPluginParameterMaps)
	uc := usecase_plugin.NewTranslateUsecase(repoMaps, timeout)
	ctrl := controller_plugin.NewTranslationController(uc)

	group.POST("/translate", ctrl.TranslateHandler)
}

func NewSwapRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repoMaps := repository_plugin.NewParameterMapRepository(db, domain.CollectionPluginParameterMaps)
	repoOwnership := repository_plugin.NewOwnershipRepository(db, domain.CollectionPluginOwnership)
	uc := usecase_plugin.NewSwapUsecase(repoMaps, repoOwnership, timeout)
	ctrl := controller_plugin.NewSwapController(uc)

	swapGroup := group.Group("/plugins/:plugin_id/swaps")
	{
		swapGroup.GET("", ctrl.FindCompatibleSwapsHandler)
		swapGroup.GET("/random", ctrl.GetRandomSwapHandler)
	}
}
