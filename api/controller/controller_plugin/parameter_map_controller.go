package controller_plugin

import (
	"net/http"

	"github.com/chainswap/chainswap-backend/api/controller"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/gin-gonic/gin"
)

type ParameterMapController struct {
	MapUsecase plugin_interface.ParameterMapUsecase
}

func NewParameterMapController(uc plugin_interface.ParameterMapUsecase) *ParameterMapController {
	return &ParameterMapController{MapUsecase: uc}
}

func (c *ParameterMapController) GetParameterMapHandler(ctx *gin.Context) {
	pluginID := ctx.Param("plugin_id")
	if pluginID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "plugin_id is required")
		return
	}

	m, err := c.MapUsecase.GetParameterMap(ctx.Request.Context(), pluginID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if m == nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "no parameter map stored for plugin")
		return
	}
	controller.SuccessResponse(ctx, "parameter_map", m, 1)
}

func (c *ParameterMapController) UpsertParameterMapHandler(ctx *gin.Context) {
	pluginID := ctx.Param("plugin_id")
	if pluginID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "plugin_id is required")
		return
	}

	var incoming plugin_models.ParameterMap
	if err := ctx.ShouldBindJSON(&incoming); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	incoming.PluginID = pluginID

	id, err := c.MapUsecase.UpsertParameterMap(ctx.Request.Context(), &incoming)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "parameter_map_id", gin.H{"mapId": id}, 1)
}

func (c *ParameterMapController) DeleteParameterMapHandler(ctx *gin.Context) {
	pluginID := ctx.Param("plugin_id")
	if pluginID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "plugin_id is required")
		return
	}

	if err := c.MapUsecase.DeleteParameterMap(ctx.Request.Context(), pluginID); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "parameter_map", gin.H{"deleted": pluginID}, 1)
}

func (c *ParameterMapController) GetSemanticsHandler(ctx *gin.Context) {
	category := ctx.Query("category")

	semantics, err := c.MapUsecase.GetSemantics(ctx.Request.Context(), category)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "parameter_semantics", semantics, len(semantics))
}
