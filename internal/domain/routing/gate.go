package routing

import "github.com/jhoicas/crm-kam-api/internal/domain/entity"

// Rutas fijas de redirección de la puerta de autorización.
const (
	LoginPath         = "/login"
	NotAuthorizedPath = "/403"
	RootPath          = "/"
)

// State resultado de evaluar una navegación.
type State string

const (
	// StateRender la ruta se monta: es pública o la identidad está autorizada.
	StateRender State = "render"
	// StateUnauthenticated no hay identidad: redirigir a /login conservando
	// el path solicitado para volver tras el login.
	StateUnauthenticated State = "unauthenticated"
	// StateUnauthorized identidad autenticada sin rol permitido: redirigir a
	// /403, nunca un fallo silencioso.
	StateUnauthorized State = "unauthorized"
	// StateNotFound path protegido sin entrada en la tabla: comodín a "/".
	StateNotFound State = "not_found"
)

// Outcome decisión de la puerta para una navegación.
type Outcome struct {
	State      State  `json:"state"`
	Component  string `json:"component,omitempty"`
	RedirectTo string `json:"redirect_to,omitempty"`
	// ReturnTo path original a restaurar tras el login (solo en
	// StateUnauthenticated).
	ReturnTo string `json:"return_to,omitempty"`
}

// Decide evalúa la navegación a `path` con la identidad actual (posiblemente
// nil). Orden de evaluación:
//
//  1. ruta pública → render inmediato, incluso sin identidad;
//  2. sin identidad → Unauthenticated, redirigir a /login;
//  3. rol no permitido (incluye rol ausente o malformado) → Unauthorized,
//     redirigir a /403;
//  4. en otro caso → render.
//
// Un path sin entrada en la tabla redirige al comodín "/".
func (t *Table) Decide(path string, id *entity.Identity) Outcome {
	entry, ok := t.Match(path)
	if !ok {
		return Outcome{State: StateNotFound, RedirectTo: RootPath}
	}
	if entry.Public {
		return Outcome{State: StateRender, Component: entry.Component}
	}
	if id == nil {
		return Outcome{State: StateUnauthenticated, RedirectTo: LoginPath, ReturnTo: path}
	}
	if !id.HasRole(entry.Roles...) {
		return Outcome{State: StateUnauthorized, RedirectTo: NotAuthorizedPath}
	}
	return Outcome{State: StateRender, Component: entry.Component}
}

// PostLoginTarget devuelve el destino tras un login correcto: el path
// originalmente solicitado si no era el raíz, o la home del rol.
func PostLoginTarget(requested, role string) string {
	if requested != "" && requested != RootPath {
		return requested
	}
	switch role {
	case entity.RoleManager:
		return "/manager"
	case entity.RoleAdmin:
		return "/executive"
	default:
		return RootPath
	}
}
