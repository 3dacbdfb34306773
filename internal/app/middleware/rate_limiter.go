package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arsuntagsmr-eng/seminar-app/internal/error/code"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/response"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// NewTokenBucket 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// 限流器过期时间，闲置的桶到期后回收
const limiterExpiry = 1 * time.Hour

// limiterGroup 一个中间件实例持有的限流器集合
// 每个实例独立建桶，不同路由组配置不同的速率时互不影响
type limiterGroup struct {
	rate    float64
	burst   int
	buckets map[string]*TokenBucket
	mu      sync.RWMutex
}

func newLimiterGroup(rate float64, burst int) *limiterGroup {
	return &limiterGroup{
		rate:    rate,
		burst:   burst,
		buckets: make(map[string]*TokenBucket),
	}
}

// get 获取指定键的限流器
func (g *limiterGroup) get(key string) *TokenBucket {
	g.mu.RLock()
	limiter, exists := g.buckets[key]
	g.mu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(g.rate, g.burst)
		g.mu.Lock()
		g.buckets[key] = limiter
		g.mu.Unlock()

		// 设置过期时间
		go func() {
			time.Sleep(limiterExpiry)
			g.mu.Lock()
			delete(g.buckets, key)
			g.mu.Unlock()
		}()
	}

	return limiter
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	group := newLimiterGroup(rate, burst)

	return func(c *gin.Context) {
		limiter := group.get(c.ClientIP())
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PathRateLimiter 按路径限流
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	group := newLimiterGroup(rate, burst)

	return func(c *gin.Context) {
		limiter := group.get(c.Request.URL.Path)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
