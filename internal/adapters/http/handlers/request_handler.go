package handlers

import (
	"errors"
	"strconv"
	"time"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/core/services"
	"permitdesk/internal/pkg/pagination"
	"permitdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles leave request endpoints
type RequestHandler struct {
	requestService *services.RequestService
	receiptService *services.ReceiptService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService, receiptService *services.ReceiptService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		receiptService: receiptService,
	}
}

// CreateRequestBody is the wire form of a creation request; dates come
// in as YYYY-MM-DD
type CreateRequestBody struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Shift     string `json:"shift"`
	Reason    string `json:"reason"`
}

// Create handles POST /requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var body CreateRequestBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		return response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		return response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
	}

	workerID, _ := c.Locals("workerID").(uint)

	input := &services.CreateRequestInput{
		Type:      body.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Shift:     body.Shift,
		Reason:    body.Reason,
	}

	request, err := h.requestService.Create(c.Context(), workerID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkerNotFound):
			return response.NotFound(c, "Worker not found")
		case errors.Is(err, domain.ErrInvalidRequestType),
			errors.Is(err, domain.ErrInvalidShift),
			errors.Is(err, domain.ErrEndBeforeStart),
			errors.Is(err, domain.ErrAdvanceNotice),
			errors.Is(err, domain.ErrReasonRequired),
			errors.Is(err, domain.ErrReasonNotInCatalog),
			errors.Is(err, domain.ErrAdminMultiDay),
			errors.Is(err, domain.ErrMultiDayNotFull),
			errors.Is(err, domain.ErrInsufficientDays):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to create request")
		}
	}

	return response.Created(c, "Request created", request.ToResponse())
}

// ListMine handles GET /requests/mine
func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	workerID, _ := c.Locals("workerID").(uint)

	requests, err := h.requestService.ListMine(c.Context(), workerID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved", toResponses(requests))
}

// ListArea handles GET /requests/area
func (h *RequestHandler) ListArea(c *fiber.Ctx) error {
	workerID, _ := c.Locals("workerID").(uint)
	params := pagination.GetParams(c)

	requests, total, err := h.requestService.ListArea(c.Context(), workerID, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return response.NotFound(c, "Worker not found")
		}
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved",
		pagination.NewResponse(toResponses(requests), params, total))
}

// DecideBody is the wire form of a decision
type DecideBody struct {
	Status string `json:"status"`
}

// Decide handles PUT /requests/:id/status
func (h *RequestHandler) Decide(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var body DecideBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	approverID, _ := c.Locals("workerID").(uint)

	request, err := h.requestService.Decide(c.Context(), uint(id), body.Status, approverID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Status must be APROBADO or RECHAZADO")
		case errors.Is(err, domain.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, domain.ErrAlreadyDecided):
			return response.Conflict(c, "Request has already been decided")
		case errors.Is(err, domain.ErrInsufficientDays):
			return response.BadRequest(c, "The worker no longer has enough leave days")
		default:
			return response.InternalServerError(c, "Failed to update request")
		}
	}

	return response.Success(c, "Request updated", request.ToResponse())
}

// Receipt handles GET /requests/:id/receipt
func (h *RequestHandler) Receipt(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	pdfBytes, filename, err := h.receiptService.Generate(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			return response.NotFound(c, "Request not found")
		case errors.Is(err, domain.ErrReceiptNotApproved):
			return response.BadRequest(c, "Receipts are only available for approved requests")
		case errors.Is(err, domain.ErrReceiptNoApprover):
			return response.BadRequest(c, "Request has no approver on record")
		default:
			return response.InternalServerError(c, "Failed to generate receipt")
		}
	}

	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Set("Content-Type", "application/pdf")
	return c.Send(pdfBytes)
}

// toResponses maps request records to their response DTOs
func toResponses(requests []*models.LeaveRequest) []*models.LeaveRequestResponse {
	responses := make([]*models.LeaveRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = request.ToResponse()
	}
	return responses
}
