package services

import (
	"fmt"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/config"
	"permitdesk/internal/core/domain"

	"gopkg.in/gomail.v2"
)

const dateLayout = "02-01-2006"

// NotificationService sends coordinator notices over SMTP. It
// implements ApprovalNotifier.
type NotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewNotificationService creates a new notification service from the
// SMTP config
func NewNotificationService(cfg *config.Config) *NotificationService {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &NotificationService{
		dialer: dialer,
		from:   cfg.SMTP.From,
	}
}

// NotifyApproval emails the coordinator about an approved request in
// their area
func (s *NotificationService) NotifyApproval(coordinator *models.Worker, request *models.LeaveRequest) error {
	subject, text, html := buildApprovalEmail(coordinator, request)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", coordinator.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	return s.dialer.DialAndSend(m)
}

// typeLabel returns the human label for a request type
func typeLabel(t string) string {
	if t == domain.TypeAdministrative {
		return "Permiso Administrativo"
	}
	return "Teletrabajo"
}

// dateDetail renders the date portion of a notice: a single date with
// its shift, or a plain range for true multi-day requests
func dateDetail(request *models.LeaveRequest) string {
	start := request.StartDate.Format(dateLayout)
	if request.MultiDay() {
		return fmt.Sprintf("Del %s al %s", start, request.EndDate.Format(dateLayout))
	}
	return fmt.Sprintf("Fecha: %s (Jornada: %s)", start, request.Shift)
}

// buildApprovalEmail renders the subject, plain-text and HTML bodies of
// the approval notice
func buildApprovalEmail(coordinator *models.Worker, request *models.LeaveRequest) (subject, text, html string) {
	workerName := ""
	areaName := ""
	if request.Worker != nil {
		workerName = request.Worker.FullName
		if request.Worker.Area != nil {
			areaName = request.Worker.Area.Name
		}
	}

	label := typeLabel(request.Type)
	detail := dateDetail(request)

	reasonText := ""
	reasonHTML := ""
	if request.Reason != nil {
		reasonText = fmt.Sprintf("- Motivo: %s\n", *request.Reason)
		reasonHTML = fmt.Sprintf("<li><strong>Motivo:</strong> %s</li>", *request.Reason)
	}

	subject = fmt.Sprintf("Solicitud Aprobada: %s - %s", label, workerName)

	text = fmt.Sprintf(`Hola %s,

Se ha aprobado una solicitud de permiso para un miembro de tu área.

Detalles de la Solicitud:
- Trabajador: %s
- Área: %s
- Tipo: %s
%s- %s

Este es un correo informativo generado automáticamente.
`, coordinator.FullName, workerName, areaName, label, reasonText, detail)

	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h3>Solicitud de Permiso Aprobada</h3>
  <p>Hola %s,</p>
  <p>Se ha aprobado una solicitud de permiso para un miembro de tu área.</p>
  <hr>
  <h4>Detalles de la Solicitud:</h4>
  <ul style="list-style-type: none; padding-left: 0;">
    <li><strong>Trabajador:</strong> %s</li>
    <li><strong>Área:</strong> %s</li>
    <li><strong>Tipo de Permiso:</strong> %s</li>
    %s
    <li><strong>Detalle:</strong> %s</li>
  </ul>
  <p><em>Este es un correo informativo generado automáticamente.</em></p>
</div>`, coordinator.FullName, workerName, areaName, label, reasonHTML, detail)

	return subject, text, html
}
