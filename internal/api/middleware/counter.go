package middleware

import (
	"net/http"
	"sync/atomic"
)

// RequestCounter counts handled requests for the metrics endpoint.
type RequestCounter struct {
	n atomic.Int64
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

func (c *RequestCounter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.n.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (c *RequestCounter) Count() int64 {
	return c.n.Load()
}
