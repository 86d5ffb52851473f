package credential

import "time"

// Credential - сохраненная учетная запись. Secret всегда хранится в виде конверта шифра.
type Credential struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Secret    string    `json:"secret"`
	Owner     string    `json:"owner"`
	Username  string    `json:"username,omitempty"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input - данные для создания и полной замены записи. Secret передается открытым текстом.
type Input struct {
	Label    string
	Secret   string
	Username string
	URL      string
	Notes    string
	Category string
}

// Revealed - результат явной расшифровки.
type Revealed struct {
	ID     string
	Label  string
	Secret string
}

// Categories - фиксированный список категорий.
var Categories = []string{
	"Social Media",
	"Banking",
	"Email",
	"Work",
	"Shopping",
	"Entertainment",
	"Other",
}
