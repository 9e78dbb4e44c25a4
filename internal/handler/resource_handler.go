package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/model"
	"seller-workspace/internal/resource"
	"seller-workspace/pkg/response"
)

// ResourceHandler 资料库请求处理器
type ResourceHandler struct {
	library *resource.Library
}

// NewResourceHandler 创建 ResourceHandler 实例
func NewResourceHandler(library *resource.Library) *ResourceHandler {
	return &ResourceHandler{library: library}
}

// AddCategoryRequest 新建分类请求
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// UploadResult 上传结果
type UploadResult struct {
	Items    []model.ResourceItem `json:"items"`
	Rejected []resource.Rejection `json:"rejected"`
}

// ListCategories 获取资料分类
// @Router /api/v1/resources/categories [get]
func (h *ResourceHandler) ListCategories(c *gin.Context) {
	response.Success(c, h.library.Categories())
}

// AddCategory 新建资料分类
// @Router /api/v1/resources/categories [post]
func (h *ResourceHandler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cat, err := h.library.AddCategory(req.Name)
	if err != nil {
		if errors.Is(err, resource.ErrEmptyName) {
			response.BadRequest(c, "category name must not be empty")
			return
		}
		response.InternalError(c, "failed to add category")
		return
	}
	response.Success(c, cat)
}

// Upload 上传资料文件（表单字段 files，可多个）
// 只记录文件元信息；部分文件被拒绝时仍返回成功，全部被拒绝时返回 CodeUploadRejected
// @Router /api/v1/resources/categories/{id}/upload [post]
func (h *ResourceHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "invalid multipart form")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		response.BadRequest(c, "no files uploaded")
		return
	}

	files := make([]resource.FileMeta, 0, len(headers))
	for _, fh := range headers {
		files = append(files, resource.FileMeta{
			Name:     fh.Filename,
			Size:     fh.Size,
			MIMEType: fh.Header.Get("Content-Type"),
		})
	}

	items, rejected, err := h.library.Upload(c.Param("id"), files)
	if err != nil {
		if errors.Is(err, resource.ErrCategoryNotFound) {
			response.NotFound(c, response.CodeCategoryNotFound, "category not found")
			return
		}
		response.InternalError(c, "failed to upload files")
		return
	}

	result := UploadResult{Items: items, Rejected: rejected}
	if result.Rejected == nil {
		result.Rejected = []resource.Rejection{}
	}
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, response.Response{
			Code:    response.CodeUploadRejected,
			Message: rejected[0].Error(),
			Data:    result,
		})
		return
	}
	response.Success(c, result)
}

// ListItems 获取资料列表，category 为空时返回全部
// @Router /api/v1/resources [get]
func (h *ResourceHandler) ListItems(c *gin.Context) {
	response.Success(c, h.library.Items(c.Query("category")))
}
