package models

// UsuarioProyecto vincula colaboradores adicionales a un proyecto,
// además de su creador.
type UsuarioProyecto struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UsuarioID  uint `gorm:"not null;uniqueIndex:idx_usuario_proyecto" json:"usuarioId"`
	ProyectoID uint `gorm:"not null;uniqueIndex:idx_usuario_proyecto" json:"proyectoId"`

	// Relationships
	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID" json:"-"`
	Proyecto *Proyecto `gorm:"foreignKey:ProyectoID" json:"-"`
}

func (UsuarioProyecto) TableName() string {
	return "usuario_proyectos"
}
