package domain

import "gorm.io/datatypes"

// TimeEntry records tracked time for an organization, optionally against a
// client. A nil endTime means the entry is still running; duration is always
// stored as supplied, the core never derives it.
type TimeEntry struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string         `gorm:"column:organizationId" json:"organizationId"`
	ClientID       *string        `gorm:"column:clientId" json:"clientId"`
	Description    *string        `gorm:"column:description" json:"description"`
	StartTime      int64          `gorm:"column:startTime" json:"startTime"`
	EndTime        *int64         `gorm:"column:endTime" json:"endTime"`
	Duration       int64          `gorm:"column:duration" json:"duration"`
	Tags           datatypes.JSON `gorm:"column:tags" json:"tags"`
	IsBillable     int64          `gorm:"column:isBillable" json:"isBillable"`
	HourlyRate     *float64       `gorm:"column:hourlyRate" json:"hourlyRate"`
	CreatedAt      *string        `gorm:"column:createdAt" json:"createdAt"`

	// Populated by joined read queries only.
	ClientName *string `gorm:"column:clientName;->" json:"clientName,omitempty"`
}

func (TimeEntry) TableName() string { return "timeEntries" }

type CreateTimeEntryRequest struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organizationId"`
	ClientID       *string        `json:"clientId"`
	Description    *string        `json:"description"`
	StartTime      int64          `json:"startTime"`
	EndTime        *int64         `json:"endTime"`
	Duration       int64          `json:"duration"`
	Tags           datatypes.JSON `json:"tags"`
	IsBillable     int64          `json:"isBillable"`
	HourlyRate     *float64       `json:"hourlyRate"`
}

type UpdateTimeEntryRequest struct {
	ClientID    *string        `json:"clientId"`
	Description *string        `json:"description"`
	StartTime   *int64         `json:"startTime"`
	EndTime     *int64         `json:"endTime"`
	Duration    *int64         `json:"duration"`
	Tags        datatypes.JSON `json:"tags"`
	IsBillable  *int64         `json:"isBillable"`
	HourlyRate  *float64       `json:"hourlyRate"`
}
