package domain

// Organization is the root tenant. Monetary fields are integer minor units;
// the invoice-number counter advances by exactly one per successful invoice
// creation and never decreases.
type Organization struct {
	ID                    string   `gorm:"column:id;primaryKey" json:"id"`
	Name                  *string  `gorm:"column:name" json:"name"`
	Country               *string  `gorm:"column:country" json:"country"`
	Address               *string  `gorm:"column:address" json:"address"`
	Email                 *string  `gorm:"column:email" json:"email"`
	Phone                 *string  `gorm:"column:phone" json:"phone"`
	Website               *string  `gorm:"column:website" json:"website"`
	RegistrationNumber    *string  `gorm:"column:registration_number" json:"registrationNumber"`
	VATIN                 *string  `gorm:"column:vatin" json:"vatin"`
	BankName              *string  `gorm:"column:bank_name" json:"bankName"`
	IBAN                  *string  `gorm:"column:iban" json:"iban"`
	Currency              *string  `gorm:"column:currency" json:"currency"`
	MinimumFractionDigits *int64   `gorm:"column:minimum_fraction_digits" json:"minimumFractionDigits"`
	DueDays               *int64   `gorm:"column:due_days" json:"dueDays"`
	OverdueCharge         *float64 `gorm:"column:overdue_charge" json:"overdueCharge"`
	CustomerNotes         *string  `gorm:"column:customerNotes" json:"customerNotes"`
	Logo                  []byte   `gorm:"column:logo" json:"logo"`
	InvoiceNumberFormat   *string  `gorm:"column:invoice_number_format" json:"invoiceNumberFormat"`
	InvoiceNumberCounter  *int64   `gorm:"column:invoice_number_counter" json:"invoiceNumberCounter"`
	DateFormat            *string  `gorm:"column:date_format" json:"dateFormat"`
	CreatedAt             *string  `gorm:"column:createdAt" json:"createdAt"`
}

func (Organization) TableName() string { return "organizations" }

type CreateOrganizationRequest struct {
	ID                    string   `json:"id"`
	Name                  *string  `json:"name"`
	Country               *string  `json:"country"`
	Address               *string  `json:"address"`
	Email                 *string  `json:"email"`
	Phone                 *string  `json:"phone"`
	Website               *string  `json:"website"`
	RegistrationNumber    *string  `json:"registrationNumber"`
	VATIN                 *string  `json:"vatin"`
	BankName              *string  `json:"bankName"`
	IBAN                  *string  `json:"iban"`
	Currency              *string  `json:"currency"`
	MinimumFractionDigits *int64   `json:"minimumFractionDigits"`
	DueDays               *int64   `json:"dueDays"`
	OverdueCharge         *float64 `json:"overdueCharge"`
	CustomerNotes         *string  `json:"customerNotes"`
	Logo                  []byte   `json:"logo"`
	InvoiceNumberFormat   *string  `json:"invoiceNumberFormat"`
	DateFormat            *string  `json:"dateFormat"`
}

// UpdateOrganizationRequest patches with COALESCE semantics: nil fields keep
// their stored values.
type UpdateOrganizationRequest struct {
	Name                  *string  `json:"name"`
	Country               *string  `json:"country"`
	Address               *string  `json:"address"`
	Email                 *string  `json:"email"`
	Phone                 *string  `json:"phone"`
	Website               *string  `json:"website"`
	RegistrationNumber    *string  `json:"registrationNumber"`
	VATIN                 *string  `json:"vatin"`
	BankName              *string  `json:"bankName"`
	IBAN                  *string  `json:"iban"`
	Currency              *string  `json:"currency"`
	MinimumFractionDigits *int64   `json:"minimumFractionDigits"`
	DueDays               *int64   `json:"dueDays"`
	OverdueCharge         *float64 `json:"overdueCharge"`
	CustomerNotes         *string  `json:"customerNotes"`
	Logo                  []byte   `json:"logo"`
	InvoiceNumberFormat   *string  `json:"invoiceNumberFormat"`
	InvoiceNumberCounter  *int64   `json:"invoiceNumberCounter"`
	DateFormat            *string  `json:"dateFormat"`
}
