// Package layout 管理三栏工作台的面板宽度和可见性
// 宽度由各面板自行限制在固定区间内，并持久化到偏好存储；
// 窗口宽度变化时按断点决定显示哪些侧栏。
package layout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"seller-workspace/internal/config"
	"seller-workspace/internal/model"
	"seller-workspace/internal/preference"
)

// Pane 可调整的侧栏
type Pane string

const (
	PaneBuyerList Pane = "buyer-list" // 左侧买家列表
	PaneBuyerInfo Pane = "buyer-info" // 右侧买家信息
)

// ErrUnknownPane 未知的面板
var ErrUnknownPane = errors.New("unknown pane")

// persistTimeout 单次持久化的超时时间
const persistTimeout = 2 * time.Second

// Bounds 面板宽度区间
type Bounds struct {
	Min     int
	Max     int
	Default int
}

// Clamp 把宽度限制在区间内
func (b Bounds) Clamp(width int) int {
	if width < b.Min {
		return b.Min
	}
	if width > b.Max {
		return b.Max
	}
	return width
}

// limitDelta 把增量限制在区间跨度内，之后再加减宽度不会溢出
func (b Bounds) limitDelta(delta int) int {
	span := b.Max - b.Min
	return max(min(delta, span), -span)
}

// Config 布局参数
type Config struct {
	BuyerList        Bounds
	BuyerInfo        Bounds
	MobileBreakpoint int // 低于该宽度隐藏两侧面板
	TabletBreakpoint int // 低于该宽度只显示买家列表
}

// DefaultConfig 返回默认布局参数
func DefaultConfig() Config {
	return Config{
		BuyerList:        Bounds{Min: 240, Max: 400, Default: 280},
		BuyerInfo:        Bounds{Min: 280, Max: 500, Default: 320},
		MobileBreakpoint: 768,
		TabletBreakpoint: 1200,
	}
}

// ConfigFrom 从应用配置构造布局参数
func ConfigFrom(cfg config.LayoutConfig) Config {
	return Config{
		BuyerList:        Bounds{Min: cfg.BuyerListMin, Max: cfg.BuyerListMax, Default: cfg.BuyerListDefault},
		BuyerInfo:        Bounds{Min: cfg.BuyerInfoMin, Max: cfg.BuyerInfoMax, Default: cfg.BuyerInfoDefault},
		MobileBreakpoint: cfg.MobileBreakpoint,
		TabletBreakpoint: cfg.TabletBreakpoint,
	}
}

// Manager 持有当前布局
type Manager struct {
	mu     sync.Mutex
	cfg    Config
	prefs  preference.Store
	layout model.PaneLayout
}

// NewManager 创建布局管理器，初始为默认宽度且两侧面板都显示
// 参数:
//   - cfg: 布局参数
//   - prefs: 偏好存储，宽度变化会写入其中
func NewManager(cfg Config, prefs preference.Store) *Manager {
	return &Manager{
		cfg:   cfg,
		prefs: prefs,
		layout: model.PaneLayout{
			BuyerListWidth: cfg.BuyerList.Default,
			BuyerInfoWidth: cfg.BuyerInfo.Default,
			ShowBuyerList:  true,
			ShowBuyerInfo:  true,
		},
	}
}

// Layout 返回当前布局
func (m *Manager) Layout() model.PaneLayout {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.layout
}

// ResizeBuyerList 调整买家列表宽度
// 分隔条在列表右侧，向右拖动（正增量）使列表变宽
func (m *Manager) ResizeBuyerList(ctx context.Context, delta int) model.PaneLayout {
	m.mu.Lock()
	m.layout.BuyerListWidth = m.cfg.BuyerList.Clamp(m.layout.BuyerListWidth + m.cfg.BuyerList.limitDelta(delta))
	width, snapshot := m.layout.BuyerListWidth, m.layout
	m.mu.Unlock()

	m.persist(ctx, preference.KeyBuyerListWidth, width)
	return snapshot
}

// ResizeBuyerInfo 调整买家信息栏宽度
// 分隔条在信息栏左侧，向右拖动（正增量）使信息栏变窄
func (m *Manager) ResizeBuyerInfo(ctx context.Context, delta int) model.PaneLayout {
	m.mu.Lock()
	m.layout.BuyerInfoWidth = m.cfg.BuyerInfo.Clamp(m.layout.BuyerInfoWidth - m.cfg.BuyerInfo.limitDelta(delta))
	width, snapshot := m.layout.BuyerInfoWidth, m.layout
	m.mu.Unlock()

	m.persist(ctx, preference.KeyBuyerInfoWidth, width)
	return snapshot
}

// Resize 按面板名调整宽度
func (m *Manager) Resize(ctx context.Context, pane Pane, delta int) (model.PaneLayout, error) {
	switch pane {
	case PaneBuyerList:
		return m.ResizeBuyerList(ctx, delta), nil
	case PaneBuyerInfo:
		return m.ResizeBuyerInfo(ctx, delta), nil
	default:
		return m.Layout(), fmt.Errorf("%w: %q", ErrUnknownPane, pane)
	}
}

// Restore 从偏好存储恢复宽度
// 键不存在、读取失败或不是整数时使用默认宽度；超出区间的值会被限制到区间内
func (m *Manager) Restore(ctx context.Context) model.PaneLayout {
	list := m.load(ctx, preference.KeyBuyerListWidth, m.cfg.BuyerList)
	info := m.load(ctx, preference.KeyBuyerInfoWidth, m.cfg.BuyerInfo)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.layout.BuyerListWidth = list
	m.layout.BuyerInfoWidth = info
	return m.layout
}

// ApplyViewport 根据窗口宽度决定侧栏可见性
// 窄屏两侧都隐藏，中等宽度只显示买家列表，宽屏全部显示
func (m *Manager) ApplyViewport(width int) model.PaneLayout {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case width < m.cfg.MobileBreakpoint:
		m.layout.ShowBuyerList = false
		m.layout.ShowBuyerInfo = false
	case width < m.cfg.TabletBreakpoint:
		m.layout.ShowBuyerList = true
		m.layout.ShowBuyerInfo = false
	default:
		m.layout.ShowBuyerList = true
		m.layout.ShowBuyerInfo = true
	}
	return m.layout
}

// Toggle 切换面板可见性
func (m *Manager) Toggle(pane Pane) (model.PaneLayout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch pane {
	case PaneBuyerList:
		m.layout.ShowBuyerList = !m.layout.ShowBuyerList
	case PaneBuyerInfo:
		m.layout.ShowBuyerInfo = !m.layout.ShowBuyerInfo
	default:
		return m.layout, fmt.Errorf("%w: %q", ErrUnknownPane, pane)
	}
	return m.layout, nil
}

// persist 写入宽度，失败只记录日志
func (m *Manager) persist(ctx context.Context, key string, width int) {
	if m.prefs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := m.prefs.Set(ctx, key, strconv.Itoa(width)); err != nil {
		log.Warn().Err(err).Str("key", key).Int("width", width).Msg("Failed to persist pane width")
	}
}

func (m *Manager) load(ctx context.Context, key string, b Bounds) int {
	if m.prefs == nil {
		return b.Default
	}
	raw, ok, err := m.prefs.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to read pane width")
		return b.Default
	}
	if !ok {
		return b.Default
	}
	width, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("Ignoring malformed pane width")
		return b.Default
	}
	return b.Clamp(width)
}
