package handlers

import (
	"errors"
	"strconv"

	"permitdesk/internal/core/domain"
	"permitdesk/internal/core/services"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WorkerHandler handles worker management endpoints (admin only)
type WorkerHandler struct {
	workerService *services.WorkerService
}

// NewWorkerHandler creates a new worker handler
func NewWorkerHandler(workerService *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

// List handles GET /workers
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	workers, err := h.workerService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list workers")
	}

	return response.Success(c, "Workers retrieved", workers)
}

// Create handles POST /workers
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var input services.CreateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	worker, err := h.workerService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrUnknownRole),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrAreaNotFound):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrEmailAlreadyInUse):
			return response.Conflict(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to create worker")
		}
	}

	return response.Created(c, "Worker created", worker)
}

// Update handles PUT /workers/:id
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid worker ID")
	}

	var input services.UpdateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	worker, err := h.workerService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkerNotFound):
			return response.NotFound(c, "Worker not found")
		case errors.Is(err, domain.ErrEmailAlreadyInUse):
			return response.Conflict(c, "Email already in use")
		case errors.Is(err, services.ErrUnknownRole),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrAreaNotFound):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update worker")
		}
	}

	return response.Success(c, "Worker updated", worker)
}

// Delete handles DELETE /workers/:id
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid worker ID")
	}

	adminID, _ := c.Locals("workerID").(uint)

	if err := h.workerService.Delete(c.Context(), uint(id), adminID); err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkerNotFound):
			return response.NotFound(c, "Worker not found")
		case errors.Is(err, domain.ErrWorkerHasRequests):
			return response.BadRequest(c, "Worker has requests and cannot be deleted")
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "Cannot delete your own account")
		default:
			return response.InternalServerError(c, "Failed to delete worker")
		}
	}

	return response.NoContent(c)
}
