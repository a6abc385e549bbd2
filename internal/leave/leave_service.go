package leave

import (
	"context"
	"errors"
	"strconv"
	"time"

	leaveerrors "github.com/PhoorinS/leave-system-dfd/internal/leave/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// PendingPlaceholder is shown when no request awaits review.
	PendingPlaceholder = "ไม่มีรายการรออนุมัติ"

	submitSuccessMessage = "บันทึกข้อมูลเรียบร้อยแล้ว"
	updateSuccessMessage = "อัพเดทสถานะเรียบร้อยแล้ว"
)

// Gateway is the slice of the sheet client the leave service needs.
type Gateway interface {
	FetchAll(ctx context.Context) ([]Record, error)
	Submit(ctx context.Context, rec Record) error
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// UpstreamFailure is implemented by gateway errors where the backend
// answered but did not accept the mutation. ResponseBody is the verbatim
// reply; FailureMessage is the backend's message field when present.
type UpstreamFailure interface {
	error
	FailureMessage() string
	ResponseBody() string
}

type Service interface {
	Refresh(ctx context.Context) []Record
	Records(ctx context.Context, refresh bool) []Record
	Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error)
	Pending(ctx context.Context, refresh bool) PendingListResponse
	UpdateStatus(ctx context.Context, id string, status Status) (UpdateStatusResponse, error)
}

type service struct {
	gateway Gateway
	store   *Store
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(gateway Gateway, store *Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		gateway: gateway,
		store:   store,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// Refresh replaces the cache with the backend's current dataset. Any
// failure degrades to an empty cache: the views render their empty states
// instead of an error. Concurrent refreshes collapse into one fetch.
func (s *service) Refresh(ctx context.Context) []Record {
	v, err, _ := s.sf.Do("refresh", func() (any, error) {
		return s.gateway.FetchAll(ctx)
	})
	if err != nil {
		s.logger.Error("refresh failed, cache reset to empty", zap.Error(err))
		s.store.Replace(nil)
		return s.store.Snapshot()
	}

	records := v.([]Record)
	s.store.Replace(records)
	s.logger.Debug("cache refreshed", zap.Int("count", len(records)))
	return s.store.Snapshot()
}

func (s *service) Records(ctx context.Context, refresh bool) []Record {
	if refresh {
		return s.Refresh(ctx)
	}
	return s.store.Snapshot()
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error) {
	start, end := req.StartDate, req.EndDate
	if Type(req.Type) == TypeOther {
		// Hourly leave carries a time-of-day range, not a date range.
		start, end = req.StartDateTime, req.EndDateTime
	}
	if start == "" || end == "" {
		return CreateLeaveResponse{}, leaveerrors.ErrMissingDatePair
	}

	rec := Record{
		ID:         strconv.FormatInt(time.Now().UnixMilli(), 10),
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Type:       Type(req.Type),
		Reason:     req.Reason,
		Start:      start,
		End:        end,
		Contact:    req.Contact,
		Status:     StatusPending,
	}

	s.logger.Debug("submitting leave request",
		zap.String("id", rec.ID),
		zap.String("employee_id", rec.EmployeeID),
		zap.String("type", string(rec.Type)),
	)

	if err := s.gateway.Submit(ctx, rec); err != nil {
		var uf UpstreamFailure
		if errors.As(err, &uf) {
			s.logger.Warn("submit rejected by backend",
				zap.String("id", rec.ID),
				zap.String("body", uf.ResponseBody()),
			)
			return CreateLeaveResponse{}, leaveerrors.Rejected(uf.ResponseBody()).WithDetails(uf.ResponseBody())
		}
		s.logger.Error("submit failed", zap.String("id", rec.ID), zap.Error(err))
		return CreateLeaveResponse{}, leaveerrors.ErrSubmitConnection
	}

	s.logger.Info("leave request submitted",
		zap.String("id", rec.ID),
		zap.String("employee_id", rec.EmployeeID),
	)
	return CreateLeaveResponse{Record: rec, Message: submitSuccessMessage}, nil
}

func (s *service) Pending(ctx context.Context, refresh bool) PendingListResponse {
	records := s.Records(ctx, refresh)

	rows := []PendingRow{}
	for _, r := range records {
		if r.Status != StatusPending {
			continue
		}
		rows = append(rows, PendingRow{
			ID:       r.ID,
			Name:     r.Name,
			Position: r.Position,
			Type:     r.Type,
			Start:    r.Start,
			End:      r.End,
			Reason:   r.Reason,
		})
	}

	if len(rows) == 0 {
		return PendingListResponse{Empty: true, Placeholder: PendingPlaceholder, Items: rows}
	}
	return PendingListResponse{Items: rows}
}

// UpdateStatus applies an admin decision. On success the cache is
// re-fetched and the fresh pending list returned; on failure the cache is
// left untouched so the stale list stays on screen.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (UpdateStatusResponse, error) {
	if status != StatusApproved && status != StatusRejected {
		return UpdateStatusResponse{}, leaveerrors.ErrInvalidTargetStatus
	}

	if err := s.gateway.UpdateStatus(ctx, id, status); err != nil {
		var uf UpstreamFailure
		if errors.As(err, &uf) {
			s.logger.Warn("status update rejected by backend",
				zap.String("id", id),
				zap.String("target_status", string(status)),
				zap.String("message", uf.FailureMessage()),
			)
			return UpdateStatusResponse{}, leaveerrors.Rejected(uf.FailureMessage())
		}
		s.logger.Error("status update failed",
			zap.String("id", id),
			zap.String("target_status", string(status)),
			zap.Error(err),
		)
		return UpdateStatusResponse{}, leaveerrors.ErrUpdateConnection
	}

	s.Refresh(ctx)
	s.logger.Info("status updated",
		zap.String("id", id),
		zap.String("status", string(status)),
	)
	return UpdateStatusResponse{
		Message: updateSuccessMessage,
		Pending: s.Pending(ctx, false),
	}, nil
}
