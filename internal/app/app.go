package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/middleware"
	"github.com/PhoorinS/leave-system-dfd/internal/sheet"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires infrastructure and registers all modules on the router.
func BuildApp(router *gin.Engine) error {
	apiURL := os.Getenv("SHEET_API_URL")
	if apiURL == "" {
		return fmt.Errorf("SHEET_API_URL is required")
	}

	timeout := envSeconds("SHEET_TIMEOUT_SECONDS", 15)
	rps := envInt("RATE_LIMIT_RPS", 20)
	burst := envInt("RATE_LIMIT_BURST", 40)

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(rps), burst))

	client := sheet.NewClient(apiURL, timeout)
	leaveService := registerModules(router, client)

	// Warm the cache once on startup, the way the original populated it on
	// page load. A failed fetch degrades to empty, it never blocks startup.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	records := leaveService.Refresh(ctx)
	zap.L().Info("initial dataset loaded", zap.Int("count", len(records)))

	return nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Second
}
