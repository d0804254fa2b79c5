package entity

import "time"

// Session representa una sesión autenticada. Se crea en login y se revoca en
// logout; una sesión revocada no vuelve a estados anteriores. El rol queda
// fijado al crear la sesión y no cambia durante su vida.
type Session struct {
	ID        string
	UserID    string
	Username  string
	Role      string
	CreatedAt time.Time
	RevokedAt *time.Time // nil mientras la sesión esté activa
}

// Active indica si la sesión sigue vigente.
func (s *Session) Active() bool {
	return s != nil && s.RevokedAt == nil
}
