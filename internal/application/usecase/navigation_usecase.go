package usecase

import (
	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// Secciones de la aplicación.
const (
	SectionDashboard  = "dashboard"
	SectionInventory  = "inventory"
	SectionQuotations = "quotations"
	SectionCounts     = "counts"
	SectionAdmin      = "admin"
)

type section struct {
	id    string
	label string
	roles []string // nil = todos los roles
}

var sections = []section{
	{id: SectionDashboard, label: "Dashboard"},
	{id: SectionInventory, label: "Stock Central"},
	{id: SectionQuotations, label: "Cotizador Real", roles: []string{entity.RoleAdmin, entity.RoleManager, entity.RoleSeller}},
	{id: SectionCounts, label: "Auditoría Planta", roles: []string{entity.RoleAdmin, entity.RoleWarehouse, entity.RoleManager}},
	{id: SectionAdmin, label: "Gestión Personal", roles: []string{entity.RoleAdmin}},
}

// NavigationService decide qué secciones ve cada rol.
// Es el único punto de la aplicación que conoce la tabla de accesos; el borde HTTP la
// consulta con el rol resuelto por el proveedor de identidad, nunca con datos del cliente.
type NavigationService struct{}

// NewNavigationService construye el servicio de navegación.
func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// HasAccess informa si role puede entrar a la sección. Una sección desconocida se niega.
func (s *NavigationService) HasAccess(role, sectionID string) bool {
	for _, sec := range sections {
		if sec.id != sectionID {
			continue
		}
		if sec.roles == nil {
			return entity.IsValidRole(role)
		}
		for _, r := range sec.roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// Sections lista las secciones visibles para role en el orden del menú.
func (s *NavigationService) Sections(role string) dto.NavigationResponse {
	out := dto.NavigationResponse{Role: role, Sections: []dto.NavSectionDTO{}}
	for _, sec := range sections {
		if s.HasAccess(role, sec.id) {
			out.Sections = append(out.Sections, dto.NavSectionDTO{ID: sec.id, Label: sec.label})
		}
	}
	return out
}
