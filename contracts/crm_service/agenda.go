package crm_service

import (
	"time"

	"travel-crm-service/domain/model"
)

// CreateTaskRequest represents the request payload for creating a follow-up task
type CreateTaskRequest struct {
	LeadID   *string    `json:"lead_id,omitempty" validate:"omitempty,ulid"`
	ClientID *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	Title    string     `json:"titulo" validate:"required,min=1,max=255"`
	Notes    string     `json:"observacoes,omitempty"`
	DueDate  *time.Time `json:"vencimento,omitempty"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	ID       string     `json:"id" validate:"required,ulid"`
	LeadID   *string    `json:"lead_id,omitempty" validate:"omitempty,ulid"`
	ClientID *string    `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	Title    string     `json:"titulo" validate:"required,min=1,max=255"`
	Notes    string     `json:"observacoes,omitempty"`
	DueDate  *time.Time `json:"vencimento,omitempty"`
	Done     bool       `json:"concluida"`
}

// TaskResponse represents the response payload for a task
type TaskResponse struct {
	ID        string  `json:"id"`
	LeadID    *string `json:"lead_id,omitempty"`
	ClientID  *string `json:"cliente_id,omitempty"`
	Title     string  `json:"titulo"`
	Notes     string  `json:"observacoes,omitempty"`
	DueDate   string  `json:"vencimento,omitempty"`
	Done      bool    `json:"concluida"`
	CreatedAt string  `json:"created_at"`
}

// TasksListResponse wraps a page of tasks
type TasksListResponse struct {
	Tasks []TaskResponse `json:"tarefas"`
}

// CreateAppointmentRequest represents the request payload for scheduling a meeting
type CreateAppointmentRequest struct {
	ClientID *string   `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	Title    string    `json:"titulo" validate:"required,min=1,max=255"`
	StartsAt time.Time `json:"inicio" validate:"required"`
	Location string    `json:"local,omitempty" validate:"omitempty,max=255"`
	Notes    string    `json:"observacoes,omitempty"`
}

// UpdateAppointmentRequest represents the request payload for updating a meeting
type UpdateAppointmentRequest struct {
	ID       string    `json:"id" validate:"required,ulid"`
	ClientID *string   `json:"cliente_id,omitempty" validate:"omitempty,ulid"`
	Title    string    `json:"titulo" validate:"required,min=1,max=255"`
	StartsAt time.Time `json:"inicio" validate:"required"`
	Location string    `json:"local,omitempty" validate:"omitempty,max=255"`
	Notes    string    `json:"observacoes,omitempty"`
}

// AppointmentResponse represents the response payload for a meeting
type AppointmentResponse struct {
	ID        string  `json:"id"`
	ClientID  *string `json:"cliente_id,omitempty"`
	Title     string  `json:"titulo"`
	StartsAt  string  `json:"inicio"`
	Location  string  `json:"local,omitempty"`
	Notes     string  `json:"observacoes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// AppointmentsListResponse wraps a page of appointments
type AppointmentsListResponse struct {
	Appointments []AppointmentResponse `json:"compromissos"`
}

// CreateTaskRequestToModel converts CreateTaskRequest to model.Task
func CreateTaskRequestToModel(req *CreateTaskRequest) *model.Task {
	return &model.Task{
		LeadID:   req.LeadID,
		ClientID: req.ClientID,
		Title:    req.Title,
		Notes:    req.Notes,
		DueDate:  req.DueDate,
	}
}

// UpdateTaskRequestToModel converts UpdateTaskRequest to model.Task
func UpdateTaskRequestToModel(req *UpdateTaskRequest) *model.Task {
	return &model.Task{
		ID:       req.ID,
		LeadID:   req.LeadID,
		ClientID: req.ClientID,
		Title:    req.Title,
		Notes:    req.Notes,
		DueDate:  req.DueDate,
		Done:     req.Done,
	}
}

// TaskModelToResponse converts model.Task to TaskResponse
func TaskModelToResponse(task *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:        task.ID,
		LeadID:    task.LeadID,
		ClientID:  task.ClientID,
		Title:     task.Title,
		Notes:     task.Notes,
		DueDate:   formatDate(task.DueDate),
		Done:      task.Done,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
}

// TaskModelsToResponses converts slice of model.Task to slice of TaskResponse
func TaskModelsToResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskModelToResponse(task)
	}
	return responses
}

// CreateAppointmentRequestToModel converts CreateAppointmentRequest to model.Appointment
func CreateAppointmentRequestToModel(req *CreateAppointmentRequest) *model.Appointment {
	return &model.Appointment{
		ClientID: req.ClientID,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		Location: req.Location,
		Notes:    req.Notes,
	}
}

// UpdateAppointmentRequestToModel converts UpdateAppointmentRequest to model.Appointment
func UpdateAppointmentRequestToModel(req *UpdateAppointmentRequest) *model.Appointment {
	return &model.Appointment{
		ID:       req.ID,
		ClientID: req.ClientID,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		Location: req.Location,
		Notes:    req.Notes,
	}
}

// AppointmentModelToResponse converts model.Appointment to AppointmentResponse
func AppointmentModelToResponse(appointment *model.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appointment.ID,
		ClientID:  appointment.ClientID,
		Title:     appointment.Title,
		StartsAt:  appointment.StartsAt.Format(time.RFC3339),
		Location:  appointment.Location,
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt.Format(time.RFC3339),
	}
}

// AppointmentModelsToResponses converts slice of model.Appointment to responses
func AppointmentModelsToResponses(appointments []*model.Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentModelToResponse(appointment)
	}
	return responses
}
