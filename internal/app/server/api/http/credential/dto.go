package credential

import (
	"time"

	"passwordy/internal/domain/credential"
)

type CredentialRequest struct {
	Label    string `json:"label" maxLength:"255" doc:"Human readable name"`
	Password string `json:"password" doc:"Secret value, stored encrypted"`
	Username string `json:"username,omitempty" maxLength:"255"`
	URL      string `json:"url,omitempty" maxLength:"2048"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty" maxLength:"64"`
}

func (r CredentialRequest) toInput() credential.Input {
	return credential.Input{
		Label:    r.Label,
		Secret:   r.Password,
		Username: r.Username,
		URL:      r.URL,
		Notes:    r.Notes,
		Category: r.Category,
	}
}

// CredentialResponse никогда не содержит открытый секрет, только конверт шифра.
type CredentialResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Value     string    `json:"value" doc:"Encrypted secret envelope"`
	Username  string    `json:"username,omitempty"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(c *credential.Credential) CredentialResponse {
	return CredentialResponse{
		ID:        c.ID,
		Label:     c.Label,
		Value:     c.Secret,
		Username:  c.Username,
		URL:       c.URL,
		Notes:     c.Notes,
		Category:  c.Category,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type RevealResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Password string `json:"password"`
}

type idInput struct {
	ID string `path:"id" doc:"Credential ID"`
}

type createInput struct {
	Body CredentialRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"Credential ID"`
	Body CredentialRequest
}

type output struct {
	Body CredentialResponse
}

type listOutput struct {
	Body []CredentialResponse
}

type revealOutput struct {
	Body RevealResponse
}

type categoriesOutput struct {
	Body []string
}
