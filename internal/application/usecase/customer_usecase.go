package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de cuentas clave (lectura para todos los
// roles de la ruta /customers).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// searchNormalizer pasa el término a minúsculas sin diacríticos, para que
// "Bogotá" y "bogota" (o nombres javaneses con acentos) casen igual.
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch normaliza un término de búsqueda.
func NormalizeSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		return s
	}
	return out
}

// List lista cuentas clave con búsqueda y filtro por witel.
func (uc *CustomerUseCase) List(search, witel, amID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(repository.CustomerFilter{
		Search: NormalizeSearch(search),
		Witel:  witel,
		AMID:   amID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID devuelve una cuenta clave o ErrNotFound.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		NIPNAS:  c.NIPNAS,
		Name:    c.Name,
		Witel:   c.Witel,
		Region:  c.Region,
		Segment: c.Segment,
		Address: c.Address,
		AMID:    c.AMID,
	}
}
