package model

import (
	"time"

	"github.com/google/uuid"
)

// SupplierRedirectEventModel: audit log append-only, satu baris per disposisi
// yang diterima. Penulisan best-effort — gagal tulis TIDAK menggagalkan respons.
type SupplierRedirectEventModel struct {
	SupplierRedirectEventID uuid.UUID `gorm:"column:supplier_redirect_event_id;primaryKey;type:uuid" json:"supplier_redirect_event_id"`

	SupplierRedirectEventProjectID    uuid.UUID  `gorm:"column:supplier_redirect_event_project_id;type:uuid;not null;index" json:"supplier_redirect_event_project_id"`
	SupplierRedirectEventSupplierID   *uuid.UUID `gorm:"column:supplier_redirect_event_supplier_id;type:uuid;index" json:"supplier_redirect_event_supplier_id,omitempty"`
	SupplierRedirectEventRespondentID *uuid.UUID `gorm:"column:supplier_redirect_event_respondent_id;type:uuid" json:"supplier_redirect_event_respondent_id,omitempty"`

	SupplierRedirectEventPID     string       `gorm:"column:supplier_redirect_event_pid;type:varchar(100);index" json:"supplier_redirect_event_pid"`
	SupplierRedirectEventOutcome EventOutcome `gorm:"column:supplier_redirect_event_outcome;type:varchar(20);not null" json:"supplier_redirect_event_outcome"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SupplierRedirectEventModel) TableName() string {
	return "supplier_redirect_events"
}
