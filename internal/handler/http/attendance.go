package http

import (
	"net/http"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	req := attendance.ListAttendanceRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.ListByRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
