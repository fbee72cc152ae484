package entity

import "time"

// Status de um agendamento.
const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCanceled  = "CANCELED"
)

// Appointment agendamento de serviço na oficina.
type Appointment struct {
	ID           string
	CompanyID    string
	CustomerID   string
	CustomerName string
	Vehicle      string
	Date         time.Time
	Description  string
	Status       string // ver constantes Appointment*
}
