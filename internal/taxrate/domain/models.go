package domain

// TaxRate belongs to one organization. At most one row per organization
// carries isDefault = 1; the repository clears siblings transactionally when a
// write sets the flag.
type TaxRate struct {
	ID             string  `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string  `gorm:"column:organizationId" json:"organizationId"`
	Name           string  `gorm:"column:name" json:"name"`
	Description    *string `gorm:"column:description" json:"description"`
	Percentage     float64 `gorm:"column:percentage" json:"percentage"`
	IsDefault      *int64  `gorm:"column:isDefault" json:"isDefault"`
}

func (TaxRate) TableName() string { return "taxRates" }

type CreateTaxRateRequest struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organizationId"`
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Percentage     float64 `json:"percentage"`
	IsDefault      *int64  `json:"isDefault"`
}

type UpdateTaxRateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Percentage  *float64 `json:"percentage"`
	IsDefault   *int64   `json:"isDefault"`
}
