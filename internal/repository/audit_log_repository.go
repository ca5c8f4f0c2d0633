package repository

import (
	"context"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

const (
	auditDefaultPerPage = 50
	auditMaxPerPage     = 200
)

// 管理画面の監査ログ検索。ゼロ値の項目は条件にしない
type AuditQuery struct {
	AdminID      string
	Actions      []model.AuditAction
	ResourceType model.AuditResourceType
	ResourceID   string
	Since        time.Time
	Page         int // 1始まり
	PerPage      int
}

// Page/PerPage を limit/offset に直す
func (q AuditQuery) Bounds() (limit, offset int) {
	limit = q.PerPage
	if limit <= 0 || limit > auditMaxPerPage {
		limit = auditDefaultPerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

type AuditPage struct {
	Logs  []model.AuditLog
	Total int64
}

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error

	// 新しい順。Totalはページング前の件数
	List(ctx context.Context, q AuditQuery) (AuditPage, error)

	// 1つの対象に対する操作を古い順に
	History(ctx context.Context, resourceType model.AuditResourceType, resourceID string) ([]model.AuditLog, error)
}
