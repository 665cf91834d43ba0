package repository

import (
	"pitchside/utils"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceExcused AttendanceStatus = "Excused"
)

// AttendanceRecord holds at most one entry per (eventId, playerId) pair;
// Mark upserts rather than appending duplicates.
type AttendanceRecord struct {
	Id       string           `json:"id"`
	EventId  string           `json:"eventId"`
	PlayerId string           `json:"playerId"`
	Status   AttendanceStatus `json:"status"`
	Notes    string           `json:"notes,omitempty"`
}

type AttendanceRepository struct {
	store Store
}

func NewAttendanceRepository(store Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) FindAll() ([]AttendanceRecord, error) {
	return loadCollection[AttendanceRecord](r.store, KeyAttendance)
}

func (r *AttendanceRepository) Mark(eventId, playerId string, status AttendanceStatus, notes string) (*AttendanceRecord, error) {
	records, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EventId == eventId && records[i].PlayerId == playerId {
			records[i].Status = status
			records[i].Notes = notes
			if err := saveCollection(r.store, KeyAttendance, records); err != nil {
				return nil, err
			}
			return &records[i], nil
		}
	}
	record := AttendanceRecord{
		Id:       uuid.NewString(),
		EventId:  eventId,
		PlayerId: playerId,
		Status:   status,
		Notes:    notes,
	}
	records = append(records, record)
	if err := saveCollection(r.store, KeyAttendance, records); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) GetForEvent(eventId string) ([]AttendanceRecord, error) {
	records, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return utils.Filter(records, func(record AttendanceRecord) bool {
		return record.EventId == eventId
	}), nil
}

func (r *AttendanceRepository) GetForPlayer(playerId string) ([]AttendanceRecord, error) {
	records, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	return utils.Filter(records, func(record AttendanceRecord) bool {
		return record.PlayerId == playerId
	}), nil
}

func (r *AttendanceRepository) GetStatus(eventId, playerId string) (*AttendanceRecord, error) {
	records, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EventId == eventId && records[i].PlayerId == playerId {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) DeleteForPlayer(playerId string) error {
	records, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(records, func(record AttendanceRecord) bool {
		return record.PlayerId != playerId
	})
	return saveCollection(r.store, KeyAttendance, kept)
}

func (r *AttendanceRepository) DeleteForEvent(eventId string) error {
	records, err := r.FindAll()
	if err != nil {
		return err
	}
	kept := utils.Filter(records, func(record AttendanceRecord) bool {
		return record.EventId != eventId
	})
	return saveCollection(r.store, KeyAttendance, kept)
}
