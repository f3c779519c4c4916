package domain

// AdministrativeReasons is the fixed catalog of accepted reasons for
// administrative leave, grouped by category. The grouping is what the
// options endpoint serves to clients; validation only cares about
// membership.
var AdministrativeReasons = map[string][]string{
	"Perfeccionamiento": {
		"Perfeccionamiento",
		"Seminarios",
		"Cursos",
		"Suplencia",
		"Misiones",
		"Comisiones",
		"Simposios",
		"Proyectos",
		"Intercambios",
		"Congresos",
		"Eventos",
		"Tesis",
		"Invitaciones",
	},
	"Reglamento": {
		"Matrimonio",
		"Fallecimiento familiar directo",
		"Nacimiento hijo",
		"Permiso sindical",
		"Exámenes preventivos",
		"Asistencia a eventos (Reglamento)",
	},
	"Particulares": {
		"Motivos particulares",
		"Fallecimiento familiar no directo",
		"Consulta médica",
		"Actividad escolar hijo",
		"Licenciatura/titulación hijo",
	},
}

var reasonSet = buildReasonSet()

func buildReasonSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, reasons := range AdministrativeReasons {
		for _, r := range reasons {
			set[r] = struct{}{}
		}
	}
	return set
}

// ValidReason reports whether reason belongs to the catalog
func ValidReason(reason string) bool {
	_, ok := reasonSet[reason]
	return ok
}
