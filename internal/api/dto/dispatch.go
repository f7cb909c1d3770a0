package dto

import "time"

type JobResponse struct {
	ID                 string  `json:"id"`
	ContainerNo        string  `json:"container_no"`
	MasterBL           string  `json:"master_bl"`
	CustomerRef        string  `json:"customer_ref"`
	Size               string  `json:"size"`
	Type               string  `json:"type"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	ETA                string  `json:"eta"`
	LastFreeDay        string  `json:"last_free_day"`
	DaysUntilLFD       int     `json:"days_until_lfd"`
	Status             string  `json:"status"`
	Urgency            string  `json:"urgency"`
	IsRemote           bool    `json:"is_remote"`
	AssignedDriverID   string  `json:"assigned_driver_id,omitempty"`
	PotentialDemurrage float64 `json:"potential_demurrage,omitempty"`
}

type DriverResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	LicensePlate string `json:"license_plate"`
	Status       string `json:"status"`
	CurrentJobID string `json:"current_job_id,omitempty"`
	Location     string `json:"location"`
}

type DispatchBoardResponse struct {
	GeneratedAt  time.Time        `json:"generated_at"`
	CriticalJobs int              `json:"critical_jobs"`
	IdleDrivers  int              `json:"idle_drivers"`
	Jobs         []JobResponse    `json:"jobs"`
	Drivers      []DriverResponse `json:"drivers"`
}
