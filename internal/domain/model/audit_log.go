package model

// 管理者操作の種類
type AuditAction string

const (
	AuditActionDeleteUser           AuditAction = "DELETE_USER"
	AuditActionUpdateOrderStatus    AuditAction = "UPDATE_ORDER_STATUS"
	AuditActionUpdateDeliveryStatus AuditAction = "UPDATE_DELIVERY_STATUS"
	AuditActionDeleteAdmin          AuditAction = "DELETE_ADMIN"
)

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionDeleteUser, AuditActionUpdateOrderStatus, AuditActionUpdateDeliveryStatus, AuditActionDeleteAdmin:
		return true
	}
	return false
}

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceUser     AuditResourceType = "user"
	AuditResourceOrder    AuditResourceType = "order"
	AuditResourceDelivery AuditResourceType = "delivery"
	AuditResourceAdmin    AuditResourceType = "admin"
)

func (t AuditResourceType) IsValid() bool {
	switch t {
	case AuditResourceUser, AuditResourceOrder, AuditResourceDelivery, AuditResourceAdmin:
		return true
	}
	return false
}

// 監査ログ（管理者操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	Document

	//操作した管理者のID
	ActorID string `gorm:"type:varchar(36);not null;index" json:"actorId"`

	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resourceType"`

	ResourceID string `gorm:"type:varchar(36);not null;index" json:"resourceId"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before"`
	AfterJSON  string `gorm:"type:text" json:"after"`
}
