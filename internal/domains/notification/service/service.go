package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"reception/config"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/internal/domains/notification/model/dto"
	"reception/shared/constant"

	"github.com/rs/zerolog/log"
)

// Notifier publishes notifications and never fails the caller. Broker errors
// and missing broker configuration degrade to a log line only.
type Notifier interface {
	SendToDepartment(ctx context.Context, department, title, message, notifType string)
	SendToUser(ctx context.Context, userID, title, message, notifType string, channels []string)
}

type serviceImpl struct {
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Notifier {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Warn().Msg("no kafka brokers configured, notifications will be dropped")
	}

	return &serviceImpl{
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) SendToDepartment(ctx context.Context, department, title, message, notifType string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendToDepartment")
	defer scope.End()

	s.publish(ctx, department, dto.NewDepartmentNotification(department, title, message, notifType))
}

func (s *serviceImpl) SendToUser(ctx context.Context, userID, title, message, notifType string, channels []string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendToUser")
	defer scope.End()

	s.publish(ctx, userID, dto.NewUserNotification(userID, title, message, notifType, channels))
}

func (s *serviceImpl) publish(ctx context.Context, key string, notif dto.Notification) {
	if len(s.cfg.Kafka.Brokers) == 0 {
		log.Warn().Str("title", notif.Title).Msg("notification dropped, no brokers configured")

		return
	}

	msg := kafka.Message{Key: key, Value: notif}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicNotifications, msg); err != nil {
		log.Error().Err(err).Str("title", notif.Title).Msg("failed to publish notification")
	}
}
