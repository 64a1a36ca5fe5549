package entity

// Company representa una empresa registrada en el sistema.
// El NIT es la clave de identidad: único dentro del catálogo.
type Company struct {
	NIT     string
	Name    string
	Address string
	Phone   string
}
