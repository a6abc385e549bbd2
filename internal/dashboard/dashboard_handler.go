package dashboard

import (
	"net/http"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type View struct {
	Calendar Calendar     `json:"calendar"`
	Recent   RecentList   `json:"recent"`
	Stats    MonthlyStats `json:"stats"`
}

type Handler struct {
	service leave.Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service leave.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

// Get renders the whole dashboard from one snapshot. The original page
// re-fetched on every load, so the default here is refresh-then-render;
// ?refresh=0 serves straight from the cache.
func (h *Handler) Get(c *gin.Context) {
	refresh := c.Query("refresh") != "0"
	records := h.service.Records(c.Request.Context(), refresh)
	now := h.now()

	view := View{
		Calendar: BuildCalendar(records, now),
		Recent:   BuildRecent(records),
		Stats:    BuildMonthlyStats(records, now),
	}

	h.logger.Debug("dashboard rendered",
		zap.Int("records", len(records)),
		zap.String("month_label", view.Calendar.MonthLabel),
	)
	response.Success(c, http.StatusOK, view, nil)
}
