package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/core/domain"

	"github.com/go-pdf/fpdf"
)

// ReceiptService renders PDF receipts for approved requests. Rendering
// is deterministic over the request record; the service holds no state
// of its own.
type ReceiptService struct {
	requestRepo repositories.LeaveRequestRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(requestRepo repositories.LeaveRequestRepository) *ReceiptService {
	return &ReceiptService{requestRepo: requestRepo}
}

// Generate renders the receipt for a request and returns the PDF bytes
// and a download filename. It refuses requests that are not APPROVED or
// that carry no approver.
func (s *ReceiptService) Generate(ctx context.Context, requestID uint) ([]byte, string, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, "", domain.ErrRequestNotFound
	}

	if request.Status != domain.StatusApproved {
		return nil, "", domain.ErrReceiptNotApproved
	}
	if request.Approver == nil {
		return nil, "", domain.ErrReceiptNoApprover
	}

	pdfBytes, err := renderReceipt(request)
	if err != nil {
		return nil, "", err
	}

	firstName := ""
	if request.Worker != nil {
		firstName = strings.SplitN(request.Worker.FullName, " ", 2)[0]
	}
	filename := fmt.Sprintf("Comprobante-Permiso-%d-%s.pdf", request.ID, firstName)

	return pdfBytes, filename, nil
}

// renderReceipt lays out the fixed receipt document
func renderReceipt(request *models.LeaveRequest) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr("Comprobante de Solicitud de Permiso"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	worker := request.Worker
	areaName := ""
	if worker != nil && worker.Area != nil {
		areaName = worker.Area.Name
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("1. Datos del Solicitante"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	if worker != nil {
		pdf.CellFormat(0, 7, tr("Nombre: "+worker.FullName), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr("Área: "+areaName), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr("Email: "+worker.Email), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("2. Detalles de la Solicitud"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Tipo de Permiso: "+typeLabel(request.Type)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Fecha permiso: "+dateDetail(request)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Estado: "+request.Status), "", 1, "L", false, 0, "")
	if request.Reason != nil {
		pdf.CellFormat(0, 7, tr("Motivo: "+*request.Reason), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("3. Autorización Administrativa"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	approver := request.Approver
	pdf.CellFormat(0, 7, tr("Aprobado por: "+approver.FullName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Rol: "+approver.Role), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Fecha de Aprobación: "+request.UpdatedAt.Format("02-01-2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Este documento es un comprobante oficial generado por el Sistema de Gestión de Permisos."), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
