package domain

// Project groups work for an organization, optionally scoped to a client. A
// non-nil archivedAt means the project is archived. Dates are epoch
// milliseconds.
type Project struct {
	ID             string  `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string  `gorm:"column:organizationId" json:"organizationId"`
	Name           string  `gorm:"column:name" json:"name"`
	ClientID       *string `gorm:"column:clientId" json:"clientId"`
	StartDate      *int64  `gorm:"column:startDate" json:"startDate"`
	EndDate        *int64  `gorm:"column:endDate" json:"endDate"`
	ArchivedAt     *int64  `gorm:"column:archivedAt" json:"archivedAt"`
	CreatedAt      *string `gorm:"column:createdAt" json:"createdAt"`

	// Populated by joined list queries only.
	ClientName *string `gorm:"column:clientName;->" json:"clientName,omitempty"`
}

func (Project) TableName() string { return "projects" }

type CreateProjectRequest struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	ClientID       *string `json:"clientId"`
	StartDate      *int64  `json:"startDate"`
	EndDate        *int64  `json:"endDate"`
	ArchivedAt     *int64  `json:"archivedAt"`
}

// UpdateProjectRequest writes only the fields present in the patch, one field
// per statement.
type UpdateProjectRequest struct {
	Name       *string `json:"name"`
	ClientID   *string `json:"clientId"`
	StartDate  *int64  `json:"startDate"`
	EndDate    *int64  `json:"endDate"`
	ArchivedAt *int64  `json:"archivedAt"`
}
