package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit caps requests per client IP. The format follows limiter's
// notation, e.g. "30-M" for thirty per minute.
func RateLimit(format string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", format, err)
	}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)), nil
}
