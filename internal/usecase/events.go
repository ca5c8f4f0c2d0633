package usecase

import (
	"context"

	"github.com/labstack/gommon/log"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
	EventUserDeleted        = "user.deleted"
)

// ドメインイベントの発行先
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// 発行の失敗はログだけ。リクエストは失敗させない
func publish(ctx context.Context, p EventPublisher, routingKey string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, payload); err != nil {
		log.Warnf("publish %s failed: %v", routingKey, err)
	}
}
