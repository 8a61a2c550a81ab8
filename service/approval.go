package service

import (
	"errors"
	"fmt"
	"time"

	"staffhub/models"

	"gorm.io/gorm"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ApprovalService owns the pending -> terminal state machine shared by
// attendance and leave records. No transition leaves a terminal state.
type ApprovalService struct {
	db *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{db: db}
}

// DecideAttendance transitions a pending attendance record to present
// (approve) or absent (reject).
func (s *ApprovalService) DecideAttendance(recordID string, decision Decision, actor *models.User, now time.Time) (*models.AttendanceRecord, error) {
	if err := checkDecision(decision, actor); err != nil {
		return nil, err
	}

	var record models.AttendanceRecord
	if err := s.db.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attendance record %s", ErrNotFound, recordID)
		}
		return nil, err
	}
	if record.Status != models.AttendancePending {
		return nil, fmt.Errorf("%w: attendance record is already %s", ErrInvalidStateTransition, record.Status)
	}

	if decision == DecisionApprove {
		record.Status = models.AttendancePresent
	} else {
		record.Status = models.AttendanceAbsent
	}
	record.ApprovedBy = &actor.ID
	record.ApprovedAt = &now

	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DecideLeave transitions a pending leave request to approved or rejected.
func (s *ApprovalService) DecideLeave(leaveID string, decision Decision, actor *models.User, now time.Time) (*models.LeaveRequest, error) {
	if err := checkDecision(decision, actor); err != nil {
		return nil, err
	}

	var leave models.LeaveRequest
	if err := s.db.First(&leave, "id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: leave request %s", ErrNotFound, leaveID)
		}
		return nil, err
	}
	if leave.Status != models.LeavePending {
		return nil, fmt.Errorf("%w: leave request is already %s", ErrInvalidStateTransition, leave.Status)
	}

	if decision == DecisionApprove {
		leave.Status = models.LeaveApproved
	} else {
		leave.Status = models.LeaveRejected
	}
	leave.ApprovedBy = &actor.ID
	leave.ApprovedAt = &now

	if err := s.db.Save(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func checkDecision(decision Decision, actor *models.User) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return fmt.Errorf("%w: decision must be 'approve' or 'reject'", ErrValidation)
	}
	if actor == nil || !actor.CanApprove() {
		return fmt.Errorf("%w: only admin or manager may approve records", ErrForbidden)
	}
	return nil
}
