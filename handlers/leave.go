package handlers

import (
	"net/http"
	"time"

	"staffhub/middleware"
	"staffhub/models"
	"staffhub/service"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type LeaveHandler struct {
	db        *gorm.DB
	leaves    *service.LeaveService
	approvals *service.ApprovalService
}

func NewLeaveHandler(db *gorm.DB, leaves *service.LeaveService, approvals *service.ApprovalService) *LeaveHandler {
	return &LeaveHandler{db: db, leaves: leaves, approvals: approvals}
}

type submitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondNotLinked(w)
		return
	}

	var req submitLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	startDate, err1 := time.Parse("2006-01-02", req.StartDate)
	endDate, err2 := time.Parse("2006-01-02", req.EndDate)
	if err1 != nil || err2 != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "dates must be in YYYY-MM-DD format"})
		return
	}

	leave, err := h.leaves.Submit(service.SubmitLeaveInput{
		EmployeeID: employee.ID,
		LeaveType:  models.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	}, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, leave)
}

// List returns the caller's leave history; approvers see every request and
// may filter by status.
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	if user.CanApprove() {
		leaves, err := h.leaves.ListAll(models.LeaveStatus(r.URL.Query().Get("status")))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, leaves)
		return
	}

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"linked": false, "leaves": []models.LeaveRequest{}})
		return
	}

	leaves, err := h.leaves.ListForEmployee(employee.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leaves)
}

func (h *LeaveHandler) Decide(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req decideRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	leave, err := h.approvals.DecideLeave(chi.URLParam(r, "id"), req.Decision, user, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leave)
}
