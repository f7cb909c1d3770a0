package domain

import "time"

type JobStatus string

const (
	JobPending       JobStatus = "PENDING"
	JobDispatched    JobStatus = "DISPATCHED"
	JobOutgated      JobStatus = "OUTGATED"
	JobInWarehouse   JobStatus = "IN_WAREHOUSE"
	JobEmptyReturned JobStatus = "EMPTY_RETURNED"
)

// Active reports whether the job still needs a truck (not yet out of the terminal).
func (s JobStatus) Active() bool {
	return s == JobPending || s == JobDispatched
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobDispatched, JobOutgated, JobInWarehouse, JobEmptyReturned:
		return true
	}
	return false
}

type DriverStatus string

const (
	DriverIdle         DriverStatus = "IDLE"
	DriverHaulingLoad  DriverStatus = "HAULING_LOAD"
	DriverHaulingEmpty DriverStatus = "HAULING_EMPTY"
	DriverOffDuty      DriverStatus = "OFF_DUTY"
)

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverIdle, DriverHaulingLoad, DriverHaulingEmpty, DriverOffDuty:
		return true
	}
	return false
}

// A container move from a port terminal to a warehouse.
// LastFreeDay is the terminal's last free day before demurrage.
type ContainerJob struct {
	ID                 string
	ContainerNo        string
	MasterBL           string
	CustomerRef        string
	Size               string
	Type               string
	Origin             string
	Destination        string
	ETA                time.Time
	LastFreeDay        time.Time
	Status             JobStatus
	AssignedDriverID   string
	PotentialDemurrage float64
}

type Driver struct {
	ID           string
	Name         string
	Phone        string
	LicensePlate string
	Status       DriverStatus
	CurrentJobID string
	Location     string
}

type JobUrgency string

const (
	UrgencyExpired  JobUrgency = "Expired"
	UrgencyCritical JobUrgency = "Critical"
	UrgencyHigh     JobUrgency = "High"
	UrgencyMedium   JobUrgency = "Medium"
	UrgencyLow      JobUrgency = "Low"
)

// UrgencyFor classifies a job by calendar days left until its last free day.
// Both instants are compared as UTC calendar dates.
func UrgencyFor(lastFreeDay, now time.Time) JobUrgency {
	days := DaysUntil(lastFreeDay, now)
	switch {
	case days < 0:
		return UrgencyExpired
	case days == 0:
		return UrgencyCritical
	case days == 1:
		return UrgencyHigh
	case days == 2:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// DaysUntil returns the number of UTC calendar days from now to t (negative when t is in the past).
func DaysUntil(t, now time.Time) int {
	return int(truncateDay(t).Sub(truncateDay(now)).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
