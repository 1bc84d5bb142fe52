package entities

type DeviceSnapshot struct {
	ID           string `json:"id"`
	Model        string `json:"modelo"`
	Type         string `json:"tipo"`
	Manufacturer string `json:"fabricante"`
}

type TechnicianSnapshot struct {
	ID        string  `json:"id"`
	Name      string  `json:"nome"`
	Specialty string  `json:"especialidade"`
	Contact   string  `json:"contato"`
	Salary    float64 `json:"salario"`
}

type PartSnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"nome"`
	Manufacturer string  `json:"fabricante"`
	Price        float64 `json:"preco"`
}
