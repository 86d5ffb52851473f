package generator

type passwordInput struct {
	Body PasswordRequest `required:"false"`
}

// PasswordRequest: отсутствующее поле берет значение по умолчанию, явный 0 - ошибка.
type PasswordRequest struct {
	Length         *int  `json:"length,omitempty" maximum:"128" doc:"Password length, at least 8, 16 when omitted"`
	IncludeSymbols *bool `json:"includeSymbols,omitempty" doc:"Add symbols !@#$%^&*()_+, true by default"`
}

type pinInput struct {
	Body PINRequest `required:"false"`
}

type PINRequest struct {
	Length *int `json:"length,omitempty" doc:"PIN length, 4 to 12, 6 when omitted"`
}

type passwordOutput struct {
	Body PasswordResponse
}

type PasswordResponse struct {
	Password string `json:"password"`
}

type pinOutput struct {
	Body PINResponse
}

type PINResponse struct {
	PIN string `json:"pin"`
}
