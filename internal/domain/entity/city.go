package entity

// City ciudad referenciada por Address. No es administrada por este servicio.
type City struct {
	ID    int64
	Name  string
	State string
}
