package model

// PetModel is the GORM-specific struct for the 'pets' table.
// The table is owned by the tag registration app; this service only reads it.
type PetModel struct {
	ID             string `gorm:"type:text;primaryKey"`
	Name           string `gorm:"type:text;not null"`
	OwnerPhoneE164 string `gorm:"column:owner_phone_e164;type:text"`
	PhotoURL       string `gorm:"column:photo_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
