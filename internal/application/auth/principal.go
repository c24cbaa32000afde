package auth

// Principal identidad y roles del caller para la petición actual.
// Lo construye el borde HTTP a partir de los claims del JWT y se pasa
// explícitamente a cada operación sensible a autorización; nunca se
// guarda en estado global ni se cachea entre llamadas.
type Principal struct {
	ID    int64
	Email string
	Roles []string
}

// HasRole indica si el principal tiene el rol dado. Un principal nil no
// tiene ningún rol.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
