package entities

// Company is one row of the company directory sheet.
type Company struct {
	Name             string
	Manager          string
	Contact          string
	Location         string
	Technician       string
	LayoutURL        string
	QRURL            string
	ProcessParamsURL string
}
