package entity

// Address dirección principal de un Customer. Referencia a City solo por ID;
// este servicio no valida la ciudad contra un store propio.
type Address struct {
	ID         int64
	Street     string
	Number     string
	Complement string
	District   string
	PostalCode string
	CustomerID int64
	CityID     int64
}
