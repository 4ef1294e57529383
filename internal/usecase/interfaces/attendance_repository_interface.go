package interfaces

import (
	"context"
	"lesson_billing/internal/domain/entities"
)

// IAttendanceRepository abstracts persistence for AttendanceRecord. Records
// are never deleted.
type IAttendanceRepository interface {
	Create(ctx context.Context, r entities.AttendanceRecord) (entities.AttendanceRecord, error)
	GetByID(ctx context.Context, id string) (entities.AttendanceRecord, error)
	Update(ctx context.Context, r entities.AttendanceRecord) (entities.AttendanceRecord, error)
	ListByContract(ctx context.Context, contractID string) ([]entities.AttendanceRecord, error)
}
