package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/schedule"
	"github.com/wagetime/wagetime-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	CreateSlot(w http.ResponseWriter, r *http.Request)
	DeleteSlot(w http.ResponseWriter, r *http.Request)
	ListEmployeeSlots(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// CreateSlot implements ScheduleHandler.
func (h *scheduleHandlerImpl) CreateSlot(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(w, r)
	if !ok {
		return
	}

	var req schedule.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateSlot(r.Context(), act, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift slot created", result)
}

// DeleteSlot implements ScheduleHandler.
func (h *scheduleHandlerImpl) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteSlot(r.Context(), act, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift slot deleted", nil)
}

// ListEmployeeSlots implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListEmployeeSlots(w http.ResponseWriter, r *http.Request) {
	act, ok := actor(w, r)
	if !ok {
		return
	}

	result, err := h.scheduleService.ListEmployeeSlots(r.Context(), act, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
