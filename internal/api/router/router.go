package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"gorm.io/gorm"

	"resume-nlp-go/internal/api/handler"
	"resume-nlp-go/internal/types"
)

// extractRequest 提取接口请求体
type extractRequest struct {
	SubmissionUUID string             `json:"submission_uuid"`
	ParsedData     *types.RawDocument `json:"parsed_data"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, extractHandler *handler.ExtractHandler) {
	api := h.Group("/api/v1")

	api.POST("/extract", func(c context.Context, ctx *app.RequestContext) {
		var req extractRequest
		if err := ctx.BindAndValidate(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"success": false, "error": "请求体格式错误"})
			return
		}

		// 没有解析数据就没有可提取的内容
		if req.ParsedData == nil || req.ParsedData.Text == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"success": false, "error": "No parsed_data provided"})
			return
		}

		result, err := extractHandler.HandleExtract(c, req.SubmissionUUID, *req.ParsedData)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"success": false, "error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{
			"success":        true,
			"profile_uuid":   result.ProfileUUID,
			"from_cache":     result.FromCache,
			"extracted_data": result.Profile,
		})
	})

	api.GET("/profile/:uuid", func(c context.Context, ctx *app.RequestContext) {
		profileUUID := ctx.Param("uuid")
		if profileUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"success": false, "error": "缺少画像UUID"})
			return
		}

		detail, err := extractHandler.HandleGetProfile(c, profileUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(consts.StatusNotFound, utils.H{"success": false, "error": "画像不存在"})
				return
			}
			ctx.JSON(consts.StatusInternalServerError, utils.H{"success": false, "error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{
			"success":        true,
			"profile_uuid":   detail.ProfileUUID,
			"model_version":  detail.ModelVersion,
			"extracted_data": detail.Profile,
			"download_url":   detail.DownloadURL,
		})
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
