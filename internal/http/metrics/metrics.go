package metrics

import (
	"sync"
	"time"

	"jobbox/internal/common"
)

// Collector counts requests, response classes and error codes for the
// /metrics endpoint.
type Collector struct {
	mu        sync.Mutex
	started   time.Time
	requests  int64
	byClass   map[string]int64
	errorCode map[common.ErrorCode]int64
}

func NewCollector() *Collector {
	return &Collector{
		started:   time.Now(),
		byClass:   make(map[string]int64),
		errorCode: make(map[common.ErrorCode]int64),
	}
}

func (c *Collector) ObserveRequest(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.byClass[statusClass(status)]++
}

func (c *Collector) ObserveError(code common.ErrorCode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCode[code]++
}

type Snapshot struct {
	UptimeSeconds int64            `json:"uptime_seconds"`
	Requests      int64            `json:"requests"`
	ByClass       map[string]int64 `json:"responses_by_class"`
	Errors        map[string]int64 `json:"errors_by_code"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	byClass := make(map[string]int64, len(c.byClass))
	for class, count := range c.byClass {
		byClass[class] = count
	}
	errs := make(map[string]int64, len(c.errorCode))
	for code, count := range c.errorCode {
		errs[string(code)] = count
	}
	return Snapshot{
		UptimeSeconds: int64(time.Since(c.started).Seconds()),
		Requests:      c.requests,
		ByClass:       byClass,
		Errors:        errs,
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
