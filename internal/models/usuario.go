package models

import "time"

// Roles de usuario. FINAL es el rol por defecto al registrarse.
const (
	RolAdmin = "ADMIN"
	RolStaff = "STAFF"
	RolFinal = "FINAL"
)

// ValidRol reports whether rol is one of the known roles.
func ValidRol(rol string) bool {
	return rol == RolAdmin || rol == RolStaff || rol == RolFinal
}

type Usuario struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Nombre   string    `gorm:"not null" json:"nombre"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Rol      string    `gorm:"not null;default:FINAL" json:"rol"`
	CreadoEn time.Time `gorm:"column:creado_en;autoCreateTime" json:"creado_en"`

	// Relationships
	Proyectos        []Proyecto        `gorm:"foreignKey:CreadoPorID" json:"-"`
	UsuarioProyectos []UsuarioProyecto `gorm:"foreignKey:UsuarioID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
