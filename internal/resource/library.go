// Package resource 管理供客服引用的资料库
// 资料按分类组织，上传前按大小、类型和重名校验
package resource

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/model"
)

var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = errors.New("resource category not found")
	// ErrEmptyName 名称为空
	ErrEmptyName = errors.New("name must not be empty")
)

// DefaultCategories 返回默认分类
func DefaultCategories() []model.ResourceCategory {
	return []model.ResourceCategory{
		{ID: "product-manuals", Name: "Product Manuals"},
		{ID: "company-intro", Name: "Company Introduction"},
		{ID: "faq", Name: "FAQ"},
		{ID: "shipping-info", Name: "Shipping Information"},
		{ID: "after-sales", Name: "After-sales Policy"},
	}
}

// Library 内存中的资料库
type Library struct {
	mu         sync.RWMutex
	categories []model.ResourceCategory
	items      []model.ResourceItem
	now        func() time.Time
}

// NewLibrary 创建带默认分类的资料库
func NewLibrary() *Library {
	return &Library{
		categories: DefaultCategories(),
		now:        time.Now,
	}
}

// Categories 返回所有分类
func (l *Library) Categories() []model.ResourceCategory {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.ResourceCategory(nil), l.categories...)
}

// AddCategory 新增分类
// 参数:
//   - name: 分类名称，去除首尾空白后不能为空
//
// 返回:
//   - model.ResourceCategory: 新分类，ID 形如 category-<uuid>
//   - error: 名称为空时返回 ErrEmptyName
func (l *Library) AddCategory(name string) (model.ResourceCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ResourceCategory{}, ErrEmptyName
	}

	cat := model.ResourceCategory{ID: "category-" + uuid.NewString(), Name: name}

	l.mu.Lock()
	l.categories = append(l.categories, cat)
	l.mu.Unlock()

	log.Info().Str("category_id", cat.ID).Str("name", name).Msg("Resource category created")
	return cat, nil
}

// Upload 把文件记录到分类下
// 与该分类已有资料重名的文件会被拒绝
// 返回:
//   - []model.ResourceItem: 新增的资料
//   - []Rejection: 被拒绝的文件
//   - error: 分类不存在时返回 ErrCategoryNotFound
func (l *Library) Upload(categoryID string, files []FileMeta) ([]model.ResourceItem, []Rejection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasCategoryLocked(categoryID) {
		return nil, nil, ErrCategoryNotFound
	}

	var existing []FileMeta
	for _, it := range l.items {
		if it.CategoryID == categoryID {
			existing = append(existing, FileMeta{Name: it.FileName, Size: it.Size, MIMEType: it.FileType})
		}
	}

	accepted, rejected := Validate(existing, files)
	now := l.now()
	created := make([]model.ResourceItem, 0, len(accepted))
	for _, f := range accepted {
		item := model.ResourceItem{
			ID:         uuid.NewString(),
			Title:      strings.TrimSuffix(f.Name, filepath.Ext(f.Name)),
			CategoryID: categoryID,
			FileName:   f.Name,
			FileType:   f.MIMEType,
			Size:       f.Size,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		l.items = append(l.items, item)
		created = append(created, item)
	}

	if len(rejected) > 0 {
		log.Warn().Str("category_id", categoryID).Int("rejected", len(rejected)).Msg("Some files were rejected")
	}
	return created, rejected, nil
}

// Items 返回某个分类下的资料，categoryID 为空时返回全部
func (l *Library) Items(categoryID string) []model.ResourceItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.ResourceItem, 0)
	for _, it := range l.items {
		if categoryID == "" || it.CategoryID == categoryID {
			it.Tags = append([]string(nil), it.Tags...)
			out = append(out, it)
		}
	}
	return out
}

func (l *Library) hasCategoryLocked(id string) bool {
	for _, c := range l.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
