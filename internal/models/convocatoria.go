package models

import "time"

type Convocatoria struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Titulo      string    `gorm:"not null" json:"titulo"`
	Descripcion string    `gorm:"not null" json:"descripcion"`
	Abierta     bool      `gorm:"not null;default:true" json:"abierta"`
	CreadaEn    time.Time `gorm:"column:creada_en;autoCreateTime" json:"creada_en"`

	// Relationships
	Proyectos []Proyecto `gorm:"foreignKey:ConvocatoriaID" json:"proyectos,omitempty"`
}

func (Convocatoria) TableName() string {
	return "convocatorias"
}
