package domain

// Tag labels time entries within an organization.
type Tag struct {
	ID             string  `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string  `gorm:"column:organizationId" json:"organizationId"`
	Name           string  `gorm:"column:name" json:"name"`
	Color          string  `gorm:"column:color" json:"color"`
	CreatedAt      *string `gorm:"column:createdAt" json:"createdAt"`
}

func (Tag) TableName() string { return "tags" }

type CreateTagRequest struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Color          string `json:"color"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
