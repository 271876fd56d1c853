package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IconKind is a symbolic tag for the renderable icon attached to a product
// or category. The presentation layer resolves it to a concrete asset; the
// data model stays free of UI references.
type IconKind string

const (
	IconCrown      IconKind = "crown"
	IconTrophy     IconKind = "trophy"
	IconShield     IconKind = "shield"
	IconZap        IconKind = "zap"
	IconKey        IconKind = "key"
	IconBan        IconKind = "ban"
	IconCoins      IconKind = "coins"
	IconCreditCard IconKind = "credit_card"
	IconPackage    IconKind = "package"
)

// StringList stores a []string as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string list: %T", value)
	}
	return json.Unmarshal(data, l)
}

// ProductImage is one entry in a product's ordered image gallery. The ID
// is the position within the gallery, unique per product.
type ProductImage struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ProductID int    `json:"-" gorm:"primaryKey;autoIncrement:false"`
	Src       string `json:"src"`
	Alt       string `json:"alt"`
}

// Product represents an item sold in the store.
type Product struct {
	ID              int            `json:"id" gorm:"primaryKey" validate:"gt=0"`
	Name            string         `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	CategoryID      string         `json:"category_id" gorm:"type:varchar(36);index" validate:"required"`
	Description     string         `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	LongDescription string         `json:"long_description" gorm:"type:text"`
	Price           float64        `json:"price" validate:"required,gt=0"`
	Icon            IconKind       `json:"icon" gorm:"type:varchar(20)"`
	Features        StringList     `json:"features" gorm:"type:text"`
	Benefits        StringList     `json:"benefits" gorm:"type:text"`
	Images          []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	Popular         bool           `json:"popular"`
	ComingSoon      bool           `json:"coming_soon,omitempty"`
}

// Category groups products for the storefront navigation.
type Category struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name     string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Icon     IconKind  `json:"icon" gorm:"type:varchar(20)"`
	Products []Product `json:"products" gorm:"foreignKey:CategoryID"`
}
