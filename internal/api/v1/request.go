package v1

type SendMessageRequest struct {
	Body             string   `json:"body" validate:"required"`
	From             string   `json:"from"`
	NoFrom           bool     `json:"no_from"`
	Recipients       []string `json:"recipients" validate:"required,min=1,dive,required,nocomma"`
	Reference        string   `json:"reference"`
	PrivateReference string   `json:"private_reference"`
	MaxSplit         *int     `json:"max_split"`
	Delay            *int     `json:"delay"`
}
