package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/notification/model/dto"
	"salondash/internal/domains/notification/repository"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	GetNotifications(ctx context.Context, params gDto.QueryParams) (dto.GetNotificationsResponse, error)
}

type serviceImpl struct {
	repo repository.Notification
	otel otel.Otel
}

func New(repo repository.Notification, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetNotifications(ctx context.Context, params gDto.QueryParams) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.GetNotifications")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	page, err := s.repo.List(ctx, params, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, err
	}

	res.Notifications = make([]dto.NotificationResponse, 0, len(page.Items))
	for _, m := range page.Items {
		var n dto.NotificationResponse
		n.FromModel(m)
		res.Notifications = append(res.Notifications, n)
	}

	res.Pagination = page.Pagination
	if len(res.Notifications) == 0 {
		res.Empty = true
		res.EmptyMessage = dto.EmptyMessage
	}

	return res, nil
}
