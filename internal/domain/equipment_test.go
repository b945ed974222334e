package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownEquipment(t *testing.T) {
	assert.True(t, KnownEquipment("oven"))
	assert.True(t, KnownEquipment("knife"))
	assert.False(t, KnownEquipment("wok_burner"))
	assert.False(t, KnownEquipment(""))
}

func TestEquipmentByID_Known(t *testing.T) {
	e := EquipmentByID("blender")
	assert.Equal(t, "Blender", e.Name)
	assert.False(t, e.ParallelCapable)

	oven := EquipmentByID("oven")
	assert.True(t, oven.ParallelCapable)
}

func TestEquipmentByID_UnknownDefaultsPermissive(t *testing.T) {
	e := EquipmentByID("wok_burner")
	assert.Equal(t, "wok_burner", e.ID)
	assert.Equal(t, "wok_burner", e.Name)
	assert.True(t, e.ParallelCapable, "unknown equipment must not block parallel plans")
}
