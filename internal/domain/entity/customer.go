package entity

import "time"

// Customer cliente de uma oficina, com o veículo principal cadastrado.
type Customer struct {
	ID           string
	CompanyID    string
	Name         string
	Phone        string
	VehicleModel string
	VehiclePlate string
	CreatedAt    time.Time
}
