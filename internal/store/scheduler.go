package store

import (
	"sync"
	"time"
)

// TaskKind 延迟任务的种类
type TaskKind string

const (
	TaskReply       TaskKind = "reply"       // 模拟买家回复
	TaskSuggestions TaskKind = "suggestions" // 重新生成回复建议
)

// TaskKey 延迟任务的分组键
// 同一个键下可以同时挂起多个任务，Cancel 会一次性取消它们
type TaskKey struct {
	BuyerID string
	Kind    TaskKind
}

// Scheduler 延迟任务调度器
type Scheduler interface {
	// Schedule 在 delay 之后执行 fn，不会替换同键下已挂起的任务
	Schedule(key TaskKey, delay time.Duration, fn func())
	// Cancel 取消该键下所有尚未执行的任务，返回取消的数量
	Cancel(key TaskKey) int
	// Stop 取消所有任务，之后的 Schedule 调用会被忽略
	Stop()
}

// TimerScheduler 基于 time.AfterFunc 的调度器
type TimerScheduler struct {
	mu      sync.Mutex
	seq     uint64
	pending map[TaskKey]map[uint64]*time.Timer
	stopped bool
}

// NewTimerScheduler 创建调度器
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		pending: make(map[TaskKey]map[uint64]*time.Timer),
	}
}

// Schedule 实现 Scheduler
func (s *TimerScheduler) Schedule(key TaskKey, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.seq++
	id := s.seq
	if s.pending[key] == nil {
		s.pending[key] = make(map[uint64]*time.Timer)
	}
	s.pending[key][id] = time.AfterFunc(delay, func() {
		if !s.finish(key, id) {
			return
		}
		fn()
	})
}

// finish 把任务从挂起表中移除，返回任务是否仍然有效
func (s *TimerScheduler) finish(key TaskKey, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timers, ok := s.pending[key]
	if !ok {
		return false
	}
	if _, ok := timers[id]; !ok {
		return false
	}
	delete(timers, id)
	if len(timers) == 0 {
		delete(s.pending, key)
	}
	return true
}

// Cancel 实现 Scheduler
func (s *TimerScheduler) Cancel(key TaskKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	timers := s.pending[key]
	for _, t := range timers {
		t.Stop()
	}
	delete(s.pending, key)
	return len(timers)
}

// Pending 返回该键下挂起的任务数量
func (s *TimerScheduler) Pending(key TaskKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[key])
}

// Stop 实现 Scheduler
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, timers := range s.pending {
		for _, t := range timers {
			t.Stop()
		}
		delete(s.pending, key)
	}
}
