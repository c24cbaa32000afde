package dto

// CustomerPayload entrada unificada para construir un Customer.
// Forma básica (updates): solo Nome y Email. Forma de registro: además
// CPF/CNPJ, tipo, contraseña en texto plano (se hashea en el use case),
// un teléfono obligatorio más dos opcionales y la dirección inline.
type CustomerPayload struct {
	Name       string `json:"nome" validate:"required,min=5,max=120"`
	Email      string `json:"email" validate:"required,email"`
	TaxID      string `json:"cpf_cnpj" validate:"omitempty,min=11,max=14"`
	Type       int    `json:"tipo"`
	Password   string `json:"senha" validate:"omitempty,min=8"`
	Phone1     string `json:"telefone1"`
	Phone2     string `json:"telefone2"`
	Phone3     string `json:"telefone3"`
	Street     string `json:"logradouro"`
	Number     string `json:"numero"`
	Complement string `json:"complemento"`
	District   string `json:"bairro"`
	PostalCode string `json:"cep"`
	CityID     int64  `json:"cidade_id"`
}

// AddressResponse dirección en respuestas.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"logradouro"`
	Number     string `json:"numero"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	PostalCode string `json:"cep"`
	CityID     int64  `json:"cidade_id"`
}

// CustomerResponse salida de un cliente (sin hash de contraseña).
type CustomerResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"nome"`
	Email     string            `json:"email"`
	TaxID     string            `json:"cpf_cnpj,omitempty"`
	Type      int               `json:"tipo"`
	Phones    []string          `json:"telefones,omitempty"`
	Addresses []AddressResponse `json:"enderecos,omitempty"`
}

// UploadResponse ubicación del objeto subido al storage.
type UploadResponse struct {
	URI string `json:"uri"`
}
