// Package routing define la tabla canónica de rutas de la SPA y la puerta de
// autorización que decide cada navegación. La tabla vive en un único sitio y
// se valida al construirse: paths duplicados o rutas protegidas sin roles
// impiden el arranque, en lugar de producir comportamiento indefinido en
// runtime.
package routing

import (
	"fmt"
	"strings"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// Entry es una entrada de la tabla de rutas: path (con segmentos :param),
// referencia de componente, flag público y roles permitidos.
type Entry struct {
	Path      string
	Component string
	Public    bool
	Roles     []string
}

// Table tabla de rutas ordenada. El matching es primera-coincidencia en orden
// de declaración.
type Table struct {
	entries []Entry
}

// NewTable valida y construye la tabla:
//   - un path exacto no puede declararse dos veces;
//   - una ruta no pública debe tener al menos un rol, todos del conjunto
//     cerrado de roles.
func NewTable(entries []Entry) (*Table, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Path == "" {
			return nil, fmt.Errorf("routing: entrada con path vacío (componente %q)", e.Component)
		}
		if _, dup := seen[e.Path]; dup {
			return nil, fmt.Errorf("routing: path duplicado %q", e.Path)
		}
		seen[e.Path] = struct{}{}
		if e.Public {
			continue
		}
		if len(e.Roles) == 0 {
			return nil, fmt.Errorf("routing: ruta protegida %q sin roles", e.Path)
		}
		for _, r := range e.Roles {
			if !entity.ValidRole(r) {
				return nil, fmt.Errorf("routing: ruta %q con rol desconocido %q", e.Path, r)
			}
		}
	}
	return &Table{entries: entries}, nil
}

// Entries devuelve una copia de las entradas en orden de declaración.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Match busca la primera entrada cuyo patrón acepta el path solicitado.
// Los segmentos ":param" aceptan cualquier segmento no vacío.
func (t *Table) Match(path string) (*Entry, bool) {
	for i := range t.entries {
		if matchPath(t.entries[i].Path, path) {
			return &t.entries[i], true
		}
	}
	return nil, false
}

func matchPath(pattern, path string) bool {
	ps := splitPath(pattern)
	rs := splitPath(path)
	if len(ps) != len(rs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if rs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != rs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Default construye la tabla canónica de la aplicación. Los roles reproducen
// la matriz de visibilidad del producto; cualquier path fuera de la tabla cae
// al comodín que redirige a "/".
func Default() (*Table, error) {
	s, m, a := entity.RoleSales, entity.RoleManager, entity.RoleAdmin
	return NewTable([]Entry{
		{Path: "/login", Component: "Login", Public: true},
		{Path: "/register", Component: "Register", Public: true},
		{Path: "/403", Component: "NotAuthorized", Public: true},

		{Path: "/", Component: "AccountManagerDashboard", Roles: []string{s}},
		{Path: "/customers", Component: "CustomersPage", Roles: []string{a, s, m}},
		{Path: "/customers/:id", Component: "CustomerDetail", Roles: []string{a, s, m}},
		{Path: "/customers/:id/sales-plan/:planId", Component: "SalesPlanDetail", Roles: []string{a, s, m}},
		{Path: "/customers/:id/account-profile", Component: "AccountProfile", Roles: []string{a, s, m}},
		{Path: "/contacts", Component: "ContactManagement", Roles: []string{s}},
		{Path: "/contacts/:id", Component: "ContactDetail", Roles: []string{s}},
		{Path: "/aktivitas", Component: "ActivitiesPage", Roles: []string{a, s}},
		{Path: "/ecrm-workspace", Component: "EcrmWorkspace", Roles: []string{a}},
		{Path: "/ecrm-workspace/validation", Component: "ValidationPage", Roles: []string{a}},
		{Path: "/manager", Component: "ManagerPerformanceDashboard", Roles: []string{m, a}},
		{Path: "/manager/performance", Component: "ManagerPerformanceDashboard", Roles: []string{m, a}},
		{Path: "/manager/account-managers", Component: "AccountManagers", Roles: []string{m, a}},
		{Path: "/manager/sales-plans", Component: "ManagerSalesPlans", Roles: []string{m, a}},
		{Path: "/sales-plans", Component: "SalesPlans", Roles: []string{s}},
		{Path: "/executive", Component: "ExecutivePerformanceDashboard", Roles: []string{a}},
		{Path: "/executive/region", Component: "ExecutiveRegionPerformance", Roles: []string{a}},
		{Path: "/profile/am", Component: "AmProfile", Roles: []string{a, s, m}},
		{Path: "/profile/am/detail", Component: "AMDetail", Roles: []string{a, s, m}},
		{Path: "/profile/am/update", Component: "AMUpdate", Roles: []string{a, s, m}},
		{Path: "/CSG", Component: "CustomerView", Roles: []string{s}},
		{Path: "/CSG/:id", Component: "CustomerCsgDetail", Roles: []string{s}},
		{Path: "/CSG/:id/7-guidance", Component: "GuidanceDetailPage", Roles: []string{s}},
		{Path: "/admin/approval", Component: "AdminApproval", Roles: []string{a}},
		{Path: "/manager/approval", Component: "ManagerApproval", Roles: []string{m, a}},
	})
}
