package types

import (
	"time"

	"github.com/unla-startups/convocatorias-api/internal/models"
)

// UsuarioResumen is the public projection embedded wherever a creator
// or collaborator appears inside another resource.
type UsuarioResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// UsuarioResponse is the full public projection of a user. The
// password hash is never part of any response.
type UsuarioResponse struct {
	ID       uint      `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Rol      string    `json:"rol"`
	CreadoEn time.Time `json:"creado_en"`
}

type ConvocatoriaResponse struct {
	ID          uint               `json:"id"`
	Titulo      string             `json:"titulo"`
	Descripcion string             `json:"descripcion"`
	Abierta     bool               `json:"abierta"`
	CreadaEn    time.Time          `json:"creada_en"`
	Proyectos   []ProyectoResponse `json:"proyectos,omitempty"`
}

type ProyectoResponse struct {
	ID             uint                  `json:"id"`
	Titulo         string                `json:"titulo"`
	Descripcion    string                `json:"descripcion"`
	ContactoEmail  string                `json:"contacto_email"`
	ContactoCampus string                `json:"contacto_campus"`
	ConvocatoriaID *uint                 `json:"convocatoriaId"`
	CreadoPorID    uint                  `json:"creadoPorId"`
	Ganador        bool                  `json:"ganador"`
	CreadoEn       time.Time             `json:"creado_en"`
	Creador        *UsuarioResumen       `json:"creador,omitempty"`
	Convocatoria   *ConvocatoriaResponse `json:"convocatoria,omitempty"`
	Miembros       []UsuarioResumen      `json:"miembros,omitempty"`
}

func NewUsuarioResumen(u *models.Usuario) *UsuarioResumen {
	if u == nil {
		return nil
	}
	return &UsuarioResumen{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}

func NewUsuarioResponse(u *models.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Email:    u.Email,
		Rol:      u.Rol,
		CreadoEn: u.CreadoEn,
	}
}

// NewConvocatoriaResponse maps a call without its projects.
func NewConvocatoriaResponse(c *models.Convocatoria) *ConvocatoriaResponse {
	if c == nil {
		return nil
	}
	return &ConvocatoriaResponse{
		ID:          c.ID,
		Titulo:      c.Titulo,
		Descripcion: c.Descripcion,
		Abierta:     c.Abierta,
		CreadaEn:    c.CreadaEn,
	}
}

// NewConvocatoriaDetalle maps a call including its projects.
func NewConvocatoriaDetalle(c *models.Convocatoria) *ConvocatoriaResponse {
	resp := NewConvocatoriaResponse(c)
	for i := range c.Proyectos {
		resp.Proyectos = append(resp.Proyectos, NewProyectoResponse(&c.Proyectos[i]))
	}
	return resp
}

func NewProyectoResponse(p *models.Proyecto) ProyectoResponse {
	resp := ProyectoResponse{
		ID:             p.ID,
		Titulo:         p.Titulo,
		Descripcion:    p.Descripcion,
		ContactoEmail:  p.ContactoEmail,
		ContactoCampus: p.ContactoCampus,
		ConvocatoriaID: p.ConvocatoriaID,
		CreadoPorID:    p.CreadoPorID,
		Ganador:        p.Ganador,
		CreadoEn:       p.CreadoEn,
		Creador:        NewUsuarioResumen(p.Creador),
		Convocatoria:   NewConvocatoriaResponse(p.Convocatoria),
	}
	for i := range p.UsuarioProyectos {
		if miembro := NewUsuarioResumen(p.UsuarioProyectos[i].Usuario); miembro != nil {
			resp.Miembros = append(resp.Miembros, *miembro)
		}
	}
	return resp
}

func NewProyectoResponses(proyectos []models.Proyecto) []ProyectoResponse {
	resp := make([]ProyectoResponse, 0, len(proyectos))
	for i := range proyectos {
		resp = append(resp, NewProyectoResponse(&proyectos[i]))
	}
	return resp
}
