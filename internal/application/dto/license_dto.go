package dto

// EntitlementResponse snapshot do estado de acesso de um tenant.
type EntitlementResponse struct {
	DaysRemaining int  `json:"days_remaining"`
	Expired       bool `json:"expired"`
	ExpiringSoon  bool `json:"expiring_soon"`
	Blocked       bool `json:"blocked"`
	AccessDenied  bool `json:"access_denied"`
}
