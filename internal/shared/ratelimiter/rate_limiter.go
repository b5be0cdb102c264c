// Package ratelimiter は固定ウィンドウ方式のレートリミッターを提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterは、一定間隔あたりの呼び出し回数を制限します。並行利用に安全です。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // interval あたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Allowは現在のウィンドウに空きがあれば呼び出しを数えて true を返します。
// 上限に達している場合は待機せず false と次のリセットまでの時間を返します。
func (rl *RateLimiter) Allow() (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.limit {
		return false, rl.interval - now.Sub(rl.lastReset)
	}
	rl.count++
	return true, 0
}
