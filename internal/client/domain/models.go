package domain

// Client is a customer of one organization. Column names follow the migration
// scripts exactly; the wire layer serializes everything as camelCase.
type Client struct {
	ID                 string  `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID     string  `gorm:"column:organizationId" json:"organizationId"`
	Name               *string `gorm:"column:name" json:"name"`
	Code               *string `gorm:"column:code" json:"code"`
	Address            *string `gorm:"column:address" json:"address"`
	Emails             *string `gorm:"column:emails" json:"emails"`
	Phone              *string `gorm:"column:phone" json:"phone"`
	Website            *string `gorm:"column:website" json:"website"`
	RegistrationNumber *string `gorm:"column:registration_number" json:"registrationNumber"`
	VATIN              *string `gorm:"column:vatin" json:"vatin"`
	CreatedAt          *string `gorm:"column:createdAt" json:"createdAt"`
}

func (Client) TableName() string { return "clients" }

type CreateClientRequest struct {
	ID                 string  `json:"id"`
	OrganizationID     string  `json:"organizationId"`
	Name               *string `json:"name"`
	Code               *string `json:"code"`
	Address            *string `json:"address"`
	Emails             *string `json:"emails"`
	Phone              *string `json:"phone"`
	Website            *string `json:"website"`
	RegistrationNumber *string `json:"registrationNumber"`
	VATIN              *string `json:"vatin"`
}

// UpdateClientRequest is a full record of the declared fields: every column it
// covers is written unconditionally, absent fields become NULL.
type UpdateClientRequest struct {
	Name               *string `json:"name"`
	Code               *string `json:"code"`
	Address            *string `json:"address"`
	Emails             *string `json:"emails"`
	Phone              *string `json:"phone"`
	Website            *string `json:"website"`
	RegistrationNumber *string `json:"registrationNumber"`
	VATIN              *string `json:"vatin"`
}
