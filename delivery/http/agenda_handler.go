package http

import (
	"encoding/json"
	"net/http"

	"travel-crm-service/contracts/crm_service"
	"travel-crm-service/pkg/api"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/validator"
	"travel-crm-service/usecase"

	"github.com/go-chi/chi/v5"
)

// AgendaHandler handles HTTP requests for follow-up tasks and appointments
type AgendaHandler struct {
	AgendaUseCase usecase.AgendaUseCase
	Logger        logger.LoggerInterface
	API           api.Api
}

// NewAgendaHandler creates a new instance of AgendaHandler
func NewAgendaHandler(agendaUseCase usecase.AgendaUseCase, appLogger logger.LoggerInterface) *AgendaHandler {
	return &AgendaHandler{
		AgendaUseCase: agendaUseCase,
		Logger:        appLogger,
		API:           api.New(),
	}
}

// CreateTaskHandler handles HTTP requests to create a follow-up task
func (h *AgendaHandler) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create task handler called")

	var req crm_service.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for task", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for task", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	task := crm_service.CreateTaskRequestToModel(&req)
	if err := h.AgendaUseCase.CreateTask(ctx, task); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create task")
		return
	}

	h.Logger.InfoContext(ctx, "Task created successfully in handler", "id", task.ID)
	h.API.Created(ctx, w, crm_service.TaskModelToResponse(task))
}

// UpdateTaskHandler handles HTTP requests to update a task
func (h *AgendaHandler) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update task handler called")

	var req crm_service.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for task update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for task update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	task := crm_service.UpdateTaskRequestToModel(&req)
	if err := h.AgendaUseCase.UpdateTask(ctx, task); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update task")
		return
	}

	h.Logger.InfoContext(ctx, "Task updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.TaskModelToResponse(task))
}

// DeleteTaskHandler handles HTTP requests to delete a task
func (h *AgendaHandler) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete task handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete task", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.AgendaUseCase.DeleteTask(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete task")
		return
	}

	h.Logger.InfoContext(ctx, "Task deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Task deleted successfully"})
}

// ListTasksHandler handles HTTP requests to list tasks.
// A 'lead_id' query parameter narrows the list to one lead.
func (h *AgendaHandler) ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List tasks handler called")

	if leadID := r.URL.Query().Get("lead_id"); leadID != "" {
		tasks, err := h.AgendaUseCase.ListTasksByLead(ctx, leadID)
		if err != nil {
			respondAppError(ctx, w, h.API, h.Logger, err, "Failed to list tasks")
			return
		}
		h.API.Success(ctx, w, crm_service.TasksListResponse{Tasks: crm_service.TaskModelsToResponses(tasks)})
		return
	}

	offset, limit := parsePagination(r)
	tasks, total, err := h.AgendaUseCase.ListTasks(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing tasks", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list tasks")
		return
	}

	h.API.SuccessWithMeta(ctx, w, crm_service.TasksListResponse{Tasks: crm_service.TaskModelsToResponses(tasks)}, paginationMeta(offset, limit, total))
}

// CreateAppointmentHandler handles HTTP requests to schedule a meeting
func (h *AgendaHandler) CreateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create appointment handler called")

	var req crm_service.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for appointment", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for appointment", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	appointment := crm_service.CreateAppointmentRequestToModel(&req)
	if err := h.AgendaUseCase.CreateAppointment(ctx, appointment); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to create appointment")
		return
	}

	h.Logger.InfoContext(ctx, "Appointment created successfully in handler", "id", appointment.ID)
	h.API.Created(ctx, w, crm_service.AppointmentModelToResponse(appointment))
}

// UpdateAppointmentHandler handles HTTP requests to update a meeting
func (h *AgendaHandler) UpdateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update appointment handler called")

	var req crm_service.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for appointment update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for appointment update", "id", req.ID, "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	appointment := crm_service.UpdateAppointmentRequestToModel(&req)
	if err := h.AgendaUseCase.UpdateAppointment(ctx, appointment); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to update appointment")
		return
	}

	h.Logger.InfoContext(ctx, "Appointment updated successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, crm_service.AppointmentModelToResponse(appointment))
}

// DeleteAppointmentHandler handles HTTP requests to cancel a meeting
func (h *AgendaHandler) DeleteAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete appointment handler called")

	req := crm_service.ResourceIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for delete appointment", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	if err := h.AgendaUseCase.DeleteAppointment(ctx, req.ID); err != nil {
		respondAppError(ctx, w, h.API, h.Logger, err, "Failed to delete appointment")
		return
	}

	h.Logger.InfoContext(ctx, "Appointment deleted successfully in handler", "id", req.ID)
	h.API.Success(ctx, w, map[string]string{"message": "Appointment deleted successfully"})
}

// ListAppointmentsHandler handles HTTP requests to list scheduled meetings
func (h *AgendaHandler) ListAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List appointments handler called")

	offset, limit := parsePagination(r)
	appointments, total, err := h.AgendaUseCase.ListAppointments(ctx, offset, limit)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing appointments", "offset", offset, "limit", limit, "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list appointments")
		return
	}

	h.API.SuccessWithMeta(ctx, w, crm_service.AppointmentsListResponse{Appointments: crm_service.AppointmentModelsToResponses(appointments)}, paginationMeta(offset, limit, total))
}
