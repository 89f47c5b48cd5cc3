package kommo

type CreateLeadInput struct {
	Name        string
	Email       string
	Phone       string // Ex: "5511999999999"
	TipoVeiculo string
	Modelo      string
	Ano         int
}

type embeddedContacts struct {
	Embedded struct {
		Contacts []struct {
			ID int `json:"id"`
		} `json:"contacts"`
	} `json:"_embedded"`
}

type embeddedLeads struct {
	Embedded struct {
		Leads []struct {
			ID int `json:"id"`
		} `json:"leads"`
	} `json:"_embedded"`
}

type tag struct {
	Name string `json:"name"`
}

type ref struct {
	ID int `json:"id"`
}

type leadPayload struct {
	Name     string `json:"name"`
	Embedded struct {
		Tags     []tag `json:"tags"`
		Contacts []ref `json:"contacts"`
	} `json:"_embedded"`
}

type fieldValue struct {
	Value    string `json:"value"`
	EnumCode string `json:"enum_code"`
}

type customField struct {
	FieldCode string       `json:"field_code"`
	Values    []fieldValue `json:"values"`
}

type contactPayload struct {
	Name               string        `json:"name"`
	CustomFieldsValues []customField `json:"custom_fields_values"`
}
