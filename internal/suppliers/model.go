package suppliers

// Supplier represents a registered supplier. Values are stored exactly as
// submitted; the position in the store is the only identifier.
type Supplier struct {
	CNPJ         string `json:"cnpj" form:"cnpj" validate:"notblank"`
	RazaoSocial  string `json:"razao" form:"razao" validate:"notblank"`
	NomeFantasia string `json:"nomeFantasia" form:"nomeFantasia" validate:"notblank"`
	Endereco     string `json:"endereco" form:"endereco" validate:"notblank"`
	Cidade       string `json:"cidade" form:"cidade" validate:"notblank"`
	UF           string `json:"uf" form:"uf" validate:"notblank"`
	CEP          string `json:"cep" form:"cep" validate:"notblank"`
	Email        string `json:"email" form:"email" validate:"notblank"`
	Telefone     string `json:"telefone" form:"telefone" validate:"notblank"`
}

// RequiredFields lists the form field names in the order they are rendered.
var RequiredFields = []string{"cnpj", "razao", "nomeFantasia", "endereco", "cidade", "uf", "cep", "email", "telefone"}

// FromForm builds a Supplier from submitted form values.
func FromForm(get func(string) string) Supplier {
	return Supplier{
		CNPJ:         get("cnpj"),
		RazaoSocial:  get("razao"),
		NomeFantasia: get("nomeFantasia"),
		Endereco:     get("endereco"),
		Cidade:       get("cidade"),
		UF:           get("uf"),
		CEP:          get("cep"),
		Email:        get("email"),
		Telefone:     get("telefone"),
	}
}
