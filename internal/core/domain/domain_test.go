package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleWorker))
	assert.True(t, ValidRole(RoleCoordinator))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("GERENTE"))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestValidRequestType(t *testing.T) {
	assert.True(t, ValidRequestType(TypeRemoteWork))
	assert.True(t, ValidRequestType(TypeAdministrative))
	assert.False(t, ValidRequestType("VACACIONES"))
	assert.False(t, ValidRequestType(""))
}

func TestValidShift(t *testing.T) {
	assert.True(t, ValidShift(ShiftFull))
	assert.True(t, ValidShift(ShiftMorning))
	assert.True(t, ValidShift(ShiftAfternoon))
	assert.False(t, ValidShift("NOCHE"))
	assert.False(t, ValidShift(""))
}

func TestDecisionStatus(t *testing.T) {
	assert.True(t, DecisionStatus(StatusApproved))
	assert.True(t, DecisionStatus(StatusRejected))
	assert.False(t, DecisionStatus(StatusPending))
	assert.False(t, DecisionStatus("CANCELADO"))
}

func TestDayCost(t *testing.T) {
	assert.Equal(t, 1.0, DayCost(ShiftFull))
	assert.Equal(t, 0.5, DayCost(ShiftMorning))
	assert.Equal(t, 0.5, DayCost(ShiftAfternoon))
}

func TestValidReason(t *testing.T) {
	assert.True(t, ValidReason("Matrimonio"))
	assert.True(t, ValidReason("Consulta médica"))
	assert.True(t, ValidReason("Asistencia a eventos (Reglamento)"))
	assert.False(t, ValidReason("matrimonio"))
	assert.False(t, ValidReason("Vacaciones"))
	assert.False(t, ValidReason(""))
}

func TestCatalogCategories(t *testing.T) {
	assert.Contains(t, AdministrativeReasons, "Perfeccionamiento")
	assert.Contains(t, AdministrativeReasons, "Reglamento")
	assert.Contains(t, AdministrativeReasons, "Particulares")
}
