package dto

// CompanyBadgeDTO is one entry of the company selector, carrying the rollup
// health of everything the company owns.
type CompanyBadgeDTO struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Alert string `json:"alert"` // rollup health state
}

// CompanyInfoDTO is the side-panel view of one company. File links are
// already resolved to their viewable form.
type CompanyInfoDTO struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Manager          string `json:"manager"`
	Contact          string `json:"contact"`
	Location         string `json:"location"`
	Technician       string `json:"technician"`
	LayoutURL        string `json:"layout_url,omitempty"`
	QRURL            string `json:"qr_url,omitempty"`
	ProcessParamsURL string `json:"process_params_url,omitempty"`
}
