package report

import (
	"net/http"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/apperror"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service leave.Service
	logger  *zap.Logger
}

func NewHandler(service leave.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

// ExportLeaves streams the current dataset as an xlsx attachment.
func (h *Handler) ExportLeaves(c *gin.Context) {
	refresh := c.Query("refresh") != "0"
	records := h.service.Records(c.Request.Context(), refresh)

	buf, err := BuildWorkbook(records)
	if err != nil {
		h.logger.Error("workbook build failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.ErrInternal)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.logger.Info("leave report exported", zap.Int("rows", len(records)))
	c.Header("Content-Disposition", `attachment; filename="leaves.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
