package layout

// Axis 分隔条的拖动方向
type Axis int

const (
	// Horizontal 左右拖动，取 x 坐标
	Horizontal Axis = iota
	// Vertical 上下拖动，取 y 坐标
	Vertical
)

// DragTracker 跟踪一次按下-移动-松开的拖动手势
// 每次 Move 返回相对上一次位置的增量，而不是相对起点的累计值，
// 这样快速来回拖动时方向切换是准确的。
// DragTracker 不是并发安全的，每个连接持有自己的实例。
type DragTracker struct {
	axis     Axis
	onResize func(delta int)

	active              bool
	selectionSuppressed bool
	last                int
}

// NewDragTracker 创建拖动跟踪器
// onResize 在每次产生非零增量时调用，可以为 nil
func NewDragTracker(axis Axis, onResize func(delta int)) *DragTracker {
	return &DragTracker{axis: axis, onResize: onResize}
}

// Press 记录起始位置并进入拖动状态，拖动期间禁止文本选择
func (d *DragTracker) Press(x, y int) {
	d.active = true
	d.selectionSuppressed = true
	d.last = d.coord(x, y)
}

// Move 返回自上次位置以来的有符号增量
// 未处于拖动状态或位置未变化时返回 0，且不触发回调
func (d *DragTracker) Move(x, y int) int {
	if !d.active {
		return 0
	}
	pos := d.coord(x, y)
	delta := pos - d.last
	if delta == 0 {
		return 0
	}
	d.last = pos
	if d.onResize != nil {
		d.onResize(delta)
	}
	return delta
}

// Release 结束拖动并清除所有临时状态
func (d *DragTracker) Release() {
	d.active = false
	d.selectionSuppressed = false
	d.last = 0
}

// Active 是否正在拖动
func (d *DragTracker) Active() bool { return d.active }

// SelectionSuppressed 是否禁止了文本选择
func (d *DragTracker) SelectionSuppressed() bool { return d.selectionSuppressed }

func (d *DragTracker) coord(x, y int) int {
	if d.axis == Vertical {
		return y
	}
	return x
}
