package models

import "time"

type Proyecto struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Titulo         string    `gorm:"not null" json:"titulo"`
	Descripcion    string    `gorm:"not null" json:"descripcion"`
	ContactoEmail  string    `gorm:"column:contacto_email" json:"contacto_email"`
	ContactoCampus string    `gorm:"column:contacto_campus" json:"contacto_campus"`
	ConvocatoriaID *uint     `gorm:"index" json:"convocatoriaId"`
	CreadoPorID    uint      `gorm:"not null;index" json:"creadoPorId"`
	Ganador        bool      `gorm:"not null;default:false" json:"ganador"`
	CreadoEn       time.Time `gorm:"column:creado_en;autoCreateTime" json:"creado_en"`

	// Relationships
	Creador          *Usuario          `gorm:"foreignKey:CreadoPorID" json:"-"`
	Convocatoria     *Convocatoria     `gorm:"foreignKey:ConvocatoriaID" json:"-"`
	UsuarioProyectos []UsuarioProyecto `gorm:"foreignKey:ProyectoID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (Proyecto) TableName() string {
	return "proyectos"
}
