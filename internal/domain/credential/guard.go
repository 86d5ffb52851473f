package credential

// Guard разрешает доступ к записи только ее владельцу.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// Authorize returns ErrAccessDenied unless requester owns c.
func (g *Guard) Authorize(requester string, c *Credential) error {
	if requester == "" || c == nil || c.Owner != requester {
		return ErrAccessDenied
	}
	return nil
}
