package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"vidtube/internal/api/response"
	"vidtube/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parsePagination 解析分页参数。page 和 limit 都必须显式传入且为正整数，
// 缺失、非数字、零或负数一律拒绝，不做静默兜底。
func parsePagination(c *gin.Context) (page, limit int, ok bool) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	if pageStr == "" || limitStr == "" {
		response.BadRequest(c, "page 和 limit 为必填参数")
		return 0, 0, false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		response.BadRequest(c, "page 必须是正整数")
		return 0, 0, false
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		response.BadRequest(c, "limit 必须是正整数")
		return 0, 0, false
	}
	return page, limit, true
}

// parseIDParam 解析路径中的数字 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, fmt.Sprintf("无效的 %s", name))
		return 0, false
	}
	return id, true
}

// saveUpload 把 multipart 文件落到本地暂存目录，返回暂存路径。
// required 为 false 时文件缺失不算错误，返回空路径。
// 调用方负责在请求结束后删除暂存文件。
func saveUpload(c *gin.Context, field string, required bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", nil
		}
		return "", fmt.Errorf("缺少 %s 文件", field)
	}

	dst := filepath.Join(config.GetApp().TempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// removeTemp 清理暂存文件，路径为空时不做任何事
func removeTemp(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}
