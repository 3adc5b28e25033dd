package dto

// PageRequest paginación 1-based para listados (query params del original: limite, pagina).
type PageRequest struct {
	Limit int `query:"limite"`
	Page  int `query:"pagina"`
}

// DefaultPage aplica valores por defecto si Limit/Page son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Page <= 0 {
		p.Page = 1
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"pagina"`
	Limit int `json:"limite"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
