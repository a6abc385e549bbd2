package leave

import (
	"net/http"
	"strconv"

	"github.com/PhoorinS/leave-system-dfd/internal/bootstrap"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/apperror"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/contextutil"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

func NewHandler(service Service, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger()
	}
	return &Handler{service: service, audit: audit, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("request_id", contextutil.GetRequestID(c.Request.Context())),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input ไม่ถูกต้อง", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	refresh := c.Query("refresh") == "1"
	records := h.service.Records(c.Request.Context(), refresh)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(records))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, records[start:end], &meta)
}

func (h *Handler) Pending(c *gin.Context) {
	refresh := c.Query("refresh") != "0"
	resp := h.service.Pending(c.Request.Context(), refresh)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.review(c, StatusApproved)
}

func (h *Handler) Reject(c *gin.Context) {
	h.review(c, StatusRejected)
}

func (h *Handler) review(c *gin.Context, status Status) {
	ctx := c.Request.Context()
	id := c.Param("id")

	resp, err := h.service.UpdateStatus(ctx, id, status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LEAVE_REVIEW",
		Message: "leave request reviewed",
		Meta: map[string]any{
			"leave_id": id,
			"status":   string(status),
		},
	})

	response.Success(c, http.StatusOK, resp, nil)
}
