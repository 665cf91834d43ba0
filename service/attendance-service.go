package service

import (
	"pitchside/repository"
	"pitchside/scoring"
)

type AttendanceService struct {
	attendanceRepository *repository.AttendanceRepository
}

func NewAttendanceService(store repository.Store) *AttendanceService {
	return &AttendanceService{
		attendanceRepository: repository.NewAttendanceRepository(store),
	}
}

// MarkAttendance upserts on the (eventId, playerId) pair.
func (e *AttendanceService) MarkAttendance(eventId, playerId string, status repository.AttendanceStatus, notes string) (*repository.AttendanceRecord, error) {
	return e.attendanceRepository.Mark(eventId, playerId, status, notes)
}

func (e *AttendanceService) GetAttendanceForEvent(eventId string) ([]repository.AttendanceRecord, error) {
	return e.attendanceRepository.GetForEvent(eventId)
}

func (e *AttendanceService) GetAttendanceForPlayer(playerId string) ([]repository.AttendanceRecord, error) {
	return e.attendanceRepository.GetForPlayer(playerId)
}

func (e *AttendanceService) GetStatus(eventId, playerId string) (*repository.AttendanceRecord, error) {
	return e.attendanceRepository.GetStatus(eventId, playerId)
}

func (e *AttendanceService) SummarizeEvent(eventId string) (scoring.EventAttendanceSummary, error) {
	records, err := e.attendanceRepository.GetForEvent(eventId)
	if err != nil {
		return scoring.EventAttendanceSummary{}, err
	}
	return scoring.SummarizeEventAttendance(eventId, records), nil
}
