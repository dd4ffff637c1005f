package dto

// CustomerResponse representación pública de una cuenta clave.
type CustomerResponse struct {
	ID      string `json:"id"`
	NIPNAS  string `json:"nipnas"`
	Name    string `json:"name"`
	Witel   string `json:"witel"`
	Region  string `json:"region"`
	Segment string `json:"segment"`
	Address string `json:"address,omitempty"`
	AMID    string `json:"am_id,omitempty"`
}

// ContactResponse representación pública de un contacto.
type ContactResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// UpsertContactRequest alta/edición de contacto.
type UpsertContactRequest struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
