package controller_plugin

import (
	"net/http"
	"strconv"

	"github.com/chainswap/chainswap-backend/api/controller"
	"github.com/chainswap/chainswap-backend/api/middleware"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/gin-gonic/gin"
)

type SwapController struct {
	SwapUsecase plugin_interface.SwapUsecase
}

func NewSwapController(uc plugin_interface.SwapUsecase) *SwapController {
	return &SwapController{SwapUsecase: uc}
}

// resolveUserID prefers the authenticated subject set by the JWT
// middleware, falling back to an explicit user_id query field.
func resolveUserID(ctx *gin.Context) string {
	if userID := ctx.GetString(middleware.ContextUserKey); userID != "" {
		return userID
	}
	return ctx.Query("user_id")
}

func (c *SwapController) FindCompatibleSwapsHandler(ctx *gin.Context) {
	pluginID := ctx.Param("plugin_id")
	userID := resolveUserID(ctx)
	if pluginID == "" || userID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "plugin_id and user_id are required")
		return
	}

	candidates, err := c.SwapUsecase.FindCompatibleSwaps(ctx.Request.Context(), pluginID, userID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "swap_candidates", candidates, len(candidates))
}

func (c *SwapController) GetRandomSwapHandler(ctx *gin.Context) {
	pluginID := ctx.Param("plugin_id")
	userID := resolveUserID(ctx)
	if pluginID == "" || userID == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "plugin_id and user_id are required")
		return
	}

	seed, err := strconv.ParseInt(ctx.DefaultQuery("seed", "0"), 10, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "seed must be an integer")
		return
	}

	pick, err := c.SwapUsecase.GetRandomSwap(ctx.Request.Context(), pluginID, userID, seed)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if pick == nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "NO_CANDIDATES", "no compatible owned plugin in this category")
		return
	}
	controller.SuccessResponse(ctx, "swap_candidate", pick, 1)
}
