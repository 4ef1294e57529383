package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"
)

type AttendanceRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.AttendanceRecord
}

var _ interfaces.IAttendanceRepository = (*AttendanceRepository)(nil)

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{rows: map[string]entities.AttendanceRecord{}}
}

func (r *AttendanceRepository) Create(_ context.Context, rec entities.AttendanceRecord) (entities.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[rec.ID]; ok {
		return entities.AttendanceRecord{}, fmt.Errorf("attendance %s: %w", rec.ID, entities.ErrConflict)
	}
	r.rows[rec.ID] = cloneAttendance(rec)
	return cloneAttendance(rec), nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.rows[id]
	if !ok {
		return entities.AttendanceRecord{}, nil
	}
	return cloneAttendance(rec), nil
}

func (r *AttendanceRepository) Update(_ context.Context, rec entities.AttendanceRecord) (entities.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[rec.ID]; !ok {
		return entities.AttendanceRecord{}, nil
	}
	r.rows[rec.ID] = cloneAttendance(rec)
	return cloneAttendance(rec), nil
}

func (r *AttendanceRepository) ListByContract(_ context.Context, contractID string) ([]entities.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.AttendanceRecord{}
	for _, rec := range r.rows {
		if rec.ContractID == contractID {
			out = append(out, cloneAttendance(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OccurredAt.Equal(out[j].OccurredAt) {
			return out[i].OccurredAt.Before(out[j].OccurredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
