package resource

import "time"

// Record is implemented by every owner-scoped content record.
type Record interface {
	GetID() uint
	SetID(id uint)
	GetOwnerID() uint
	SetOwnerID(id uint)
	GetOrder() int
	GetCreatedAt() time.Time
}

// Base carries the columns shared by every record. The owner id is never
// taken from request bodies; callers stamp it from the principal.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   uint      `json:"userId" gorm:"column:account_id;not null;index" sanitize:"-"`
	Order     int       `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) GetID() uint             { return b.ID }
func (b *Base) SetID(id uint)           { b.ID = id }
func (b *Base) GetOwnerID() uint        { return b.OwnerID }
func (b *Base) SetOwnerID(id uint)      { b.OwnerID = id }
func (b *Base) GetOrder() int           { return b.Order }
func (b *Base) GetCreatedAt() time.Time { return b.CreatedAt }

// Pin restores identity fields after a request body was merged onto rec.
func Pin(rec Record, id, ownerID uint, createdAt time.Time) {
	rec.SetID(id)
	rec.SetOwnerID(ownerID)
	if b, ok := rec.(interface{ setCreatedAt(time.Time) }); ok {
		b.setCreatedAt(createdAt)
	}
}

func (b *Base) setCreatedAt(t time.Time) { b.CreatedAt = t }
