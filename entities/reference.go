package entities

// References point at an existing record either by id or by its natural key.
// The id wins when both are given.

type DeviceRef struct {
	ID    string `json:"id" validate:"required_without=Model"`
	Model string `json:"modelo" validate:"required_without=ID"`
}

type TechnicianRef struct {
	ID   string `json:"id" validate:"required_without=Name"`
	Name string `json:"nome" validate:"required_without=ID"`
}

type PartRef struct {
	ID   string `json:"id" validate:"required_without=Name"`
	Name string `json:"nome" validate:"required_without=ID"`
}

// ServiceInput is the payload accepted when registering a service.
type ServiceInput struct {
	ServiceType string        `json:"tipo_de_servico" validate:"required"`
	Description string        `json:"descricao" validate:"required"`
	Value       float64       `json:"valor" validate:"gte=0"`
	Device      DeviceRef     `json:"dispositivo"`
	Technician  TechnicianRef `json:"tecnico"`
	Parts       []PartRef     `json:"pecas_ids" validate:"dive"`
}
