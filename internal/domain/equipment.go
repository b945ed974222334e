package domain

// Equipment is a named kitchen appliance or tool a step may require.
// ParallelCapable marks gear that can run unattended alongside other
// equipment (an oven can, a blender cannot since it needs an operator).
type Equipment struct {
	ID              string
	Name            string
	ParallelCapable bool
}

// Catalog is the fixed set of known equipment identifiers.
var Catalog = []Equipment{
	{ID: "oven", Name: "Oven", ParallelCapable: true},
	{ID: "stovetop", Name: "Stovetop", ParallelCapable: true},
	{ID: "pressure_cooker", Name: "Pressure cooker", ParallelCapable: true},
	{ID: "slow_cooker", Name: "Slow cooker", ParallelCapable: true},
	{ID: "rice_cooker", Name: "Rice cooker", ParallelCapable: true},
	{ID: "microwave", Name: "Microwave", ParallelCapable: true},
	{ID: "sous_vide", Name: "Sous-vide circulator", ParallelCapable: true},
	{ID: "blender", Name: "Blender", ParallelCapable: false},
	{ID: "food_processor", Name: "Food processor", ParallelCapable: false},
	{ID: "stand_mixer", Name: "Stand mixer", ParallelCapable: false},
	{ID: "knife", Name: "Knife and board", ParallelCapable: false},
	{ID: "grill", Name: "Grill", ParallelCapable: true},
}

var catalogByID = func() map[string]Equipment {
	m := make(map[string]Equipment, len(Catalog))
	for _, e := range Catalog {
		m[e.ID] = e
	}
	return m
}()

// KnownEquipment reports whether id is in the catalog.
func KnownEquipment(id string) bool {
	_, ok := catalogByID[id]
	return ok
}

// EquipmentByID looks up an equipment entry. Unknown identifiers come back
// as parallel-capable with the id as display name (permissive default).
func EquipmentByID(id string) Equipment {
	if e, ok := catalogByID[id]; ok {
		return e
	}
	return Equipment{ID: id, Name: id, ParallelCapable: true}
}
