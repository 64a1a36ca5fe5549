package dto

// RecommendationsResponse texto libre devuelto por el motor de recomendaciones,
// con el énfasis **doble asterisco** ya convertido a <strong>.
type RecommendationsResponse struct {
	Recommendations string `json:"recommendations"`
}

// SendReportRequest entrada del envío de reporte por correo.
type SendReportRequest struct {
	Email string `json:"email" validate:"required"`
}
