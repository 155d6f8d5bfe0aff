package specification

import "gorm.io/gorm"

// ByType filters study sessions by their option type
type ByType struct {
	Type string
}

func (s ByType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
