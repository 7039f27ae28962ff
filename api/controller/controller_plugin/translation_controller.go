package controller_plugin

import (
	"net/http"

	"github.com/chainswap/chainswap-backend/api/controller"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/gin-gonic/gin"
)

type TranslationController struct {
	TranslationUsecase plugin_interface.TranslationUsecase
}

func NewTranslationController(uc plugin_interface.TranslationUsecase) *TranslationController {
	return &TranslationController{TranslationUsecase: uc}
}

func (c *TranslationController) TranslateHandler(ctx *gin.Context) {
	var req struct {
		SourcePluginID string                      `json:"sourcePluginId" binding:"required"`
		TargetPluginID string                      `json:"targetPluginId" binding:"required"`
		SourceParams   []plugin_models.SourceParam `json:"sourceParams" binding:"required,dive"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	// Structurally invalid normalized values are a caller bug; anything
	// translatable only partially still comes back as a 200 with a
	// confidence score.
	for _, sp := range req.SourceParams {
		if sp.NormalizedValue < 0 || sp.NormalizedValue > 1 {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "normalizedValue must be within [0,1]")
			return
		}
	}

	result, err := c.TranslationUsecase.TranslateParameters(
		ctx.Request.Context(),
		req.SourcePluginID,
		req.TargetPluginID,
		req.SourceParams,
	)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "translation", result, len(result.TargetParams))
}
