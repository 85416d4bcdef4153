package ecs_test

import (
	"testing"

	"github.com/plus3/lattice/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetComponentRoundTrip(t *testing.T) {
	world := newTestCoordinator()
	e, err := world.CreateEntity()
	require.NoError(t, err)

	require.NoError(t, ecs.AddComponent(world, e, Position{X: 3, Y: 4}))

	pos, err := ecs.GetComponent[Position](world, e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)

	posID, err := ecs.ComponentTypeFor[Position](world)
	require.NoError(t, err)
	sig, err := world.Signature(e)
	require.NoError(t, err)
	assert.Equal(t, ecs.NewSignature(posID), sig)

	// Mutation through the returned pointer is visible on the next read.
	pos.X = 99
	again, err := ecs.GetComponent[Position](world, e)
	require.NoError(t, err)
	assert.Equal(t, float32(99), again.X)
}

func TestAddDuplicateComponent(t *testing.T) {
	world := newTestCoordinator()
	e, _ := world.CreateEntity()

	require.NoError(t, ecs.AddComponent(world, e, Name{Value: "first"}))
	err := ecs.AddComponent(world, e, Name{Value: "second"})

	var dup ecs.DuplicateComponentError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, e, dup.Entity)

	// No implicit overwrite: the original value survives.
	name, err := ecs.GetComponent[Name](world, e)
	require.NoError(t, err)
	assert.Equal(t, "first", name.Value)
}

func TestRemoveComponent(t *testing.T) {
	world := newTestCoordinator()
	e, _ := world.CreateEntity()

	require.NoError(t, ecs.AddComponent(world, e, Health{Current: 10, Max: 20}))
	require.NoError(t, ecs.RemoveComponent[Health](world, e))

	_, err := ecs.GetComponent[Health](world, e)
	var notFound ecs.ComponentNotFoundError
	assert.ErrorAs(t, err, &notFound)

	sig, err := world.Signature(e)
	require.NoError(t, err)
	assert.Equal(t, ecs.NewSignature(), sig, "removal must clear the signature bit")
}

func TestRemoveAbsentComponent(t *testing.T) {
	world := newTestCoordinator()
	e, _ := world.CreateEntity()
	require.NoError(t, ecs.AddComponent(world, e, Score(7)))

	err := ecs.RemoveComponent[Health](world, e)
	var notFound ecs.ComponentNotFoundError
	require.ErrorAs(t, err, &notFound)

	// Failed removal must not mutate the signature.
	scoreID, _ := ecs.ComponentTypeFor[Score](world)
	sig, _ := world.Signature(e)
	assert.Equal(t, ecs.NewSignature(scoreID), sig)
}

func TestComponentOpsOnDeadEntity(t *testing.T) {
	world := newTestCoordinator()
	e, _ := world.CreateEntity()
	require.NoError(t, world.DestroyEntity(e))

	var invalid ecs.InvalidEntityError
	assert.ErrorAs(t, ecs.AddComponent(world, e, Position{}), &invalid)

	_, err := ecs.GetComponent[Position](world, e)
	var notFound ecs.ComponentNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUnregisteredComponentType(t *testing.T) {
	type unregistered struct{ V int }
	world := newTestCoordinator()
	e, _ := world.CreateEntity()

	var unreg ecs.UnregisteredComponentError
	assert.ErrorAs(t, ecs.AddComponent(world, e, unregistered{V: 1}), &unreg)

	_, err := ecs.GetComponent[unregistered](world, e)
	assert.ErrorAs(t, err, &unreg)

	_, err = ecs.ComponentTypeFor[unregistered](world)
	assert.ErrorAs(t, err, &unreg)
}

func TestRegisterComponentIdempotent(t *testing.T) {
	world := newTestCoordinator()

	first, err := ecs.RegisterComponent[Position](world)
	require.NoError(t, err)
	second, err := ecs.RegisterComponent[Position](world)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := world.CollectStats()
	assert.Equal(t, 8, stats.ComponentTypeCount, "re-registration must not consume a type slot")
}

func TestComponentTypeIDsAreStable(t *testing.T) {
	world := newTestCoordinator()

	posID, err := ecs.ComponentTypeFor[Position](world)
	require.NoError(t, err)
	velID, err := ecs.ComponentTypeFor[Velocity](world)
	require.NoError(t, err)

	assert.Equal(t, ecs.ComponentTypeID(0), posID)
	assert.Equal(t, ecs.ComponentTypeID(1), velID)
}

// Distinct empty types to exhaust the signature width.
type (
	w00 struct{}
	w01 struct{}
	w02 struct{}
	w03 struct{}
	w04 struct{}
	w05 struct{}
	w06 struct{}
	w07 struct{}
	w08 struct{}
	w09 struct{}
	w10 struct{}
	w11 struct{}
	w12 struct{}
	w13 struct{}
	w14 struct{}
	w15 struct{}
	w16 struct{}
	w17 struct{}
	w18 struct{}
	w19 struct{}
	w20 struct{}
	w21 struct{}
	w22 struct{}
	w23 struct{}
	w24 struct{}
	w25 struct{}
	w26 struct{}
	w27 struct{}
	w28 struct{}
	w29 struct{}
	w30 struct{}
	w31 struct{}
	w32 struct{}
	w33 struct{}
	w34 struct{}
	w35 struct{}
	w36 struct{}
	w37 struct{}
	w38 struct{}
	w39 struct{}
	w40 struct{}
	w41 struct{}
	w42 struct{}
	w43 struct{}
	w44 struct{}
	w45 struct{}
	w46 struct{}
	w47 struct{}
	w48 struct{}
	w49 struct{}
	w50 struct{}
	w51 struct{}
	w52 struct{}
	w53 struct{}
	w54 struct{}
	w55 struct{}
)

func TestTooManyComponentTypes(t *testing.T) {
	// The fixture coordinator already holds 8 types; 56 more reach the
	// signature width of 64.
	world := newTestCoordinator()

	registrations := []func(*ecs.Coordinator) (ecs.ComponentTypeID, error){
		ecs.RegisterComponent[w00],
		ecs.RegisterComponent[w01],
		ecs.RegisterComponent[w02],
		ecs.RegisterComponent[w03],
		ecs.RegisterComponent[w04],
		ecs.RegisterComponent[w05],
		ecs.RegisterComponent[w06],
		ecs.RegisterComponent[w07],
		ecs.RegisterComponent[w08],
		ecs.RegisterComponent[w09],
		ecs.RegisterComponent[w10],
		ecs.RegisterComponent[w11],
		ecs.RegisterComponent[w12],
		ecs.RegisterComponent[w13],
		ecs.RegisterComponent[w14],
		ecs.RegisterComponent[w15],
		ecs.RegisterComponent[w16],
		ecs.RegisterComponent[w17],
		ecs.RegisterComponent[w18],
		ecs.RegisterComponent[w19],
		ecs.RegisterComponent[w20],
		ecs.RegisterComponent[w21],
		ecs.RegisterComponent[w22],
		ecs.RegisterComponent[w23],
		ecs.RegisterComponent[w24],
		ecs.RegisterComponent[w25],
		ecs.RegisterComponent[w26],
		ecs.RegisterComponent[w27],
		ecs.RegisterComponent[w28],
		ecs.RegisterComponent[w29],
		ecs.RegisterComponent[w30],
		ecs.RegisterComponent[w31],
		ecs.RegisterComponent[w32],
		ecs.RegisterComponent[w33],
		ecs.RegisterComponent[w34],
		ecs.RegisterComponent[w35],
		ecs.RegisterComponent[w36],
		ecs.RegisterComponent[w37],
		ecs.RegisterComponent[w38],
		ecs.RegisterComponent[w39],
		ecs.RegisterComponent[w40],
		ecs.RegisterComponent[w41],
		ecs.RegisterComponent[w42],
		ecs.RegisterComponent[w43],
		ecs.RegisterComponent[w44],
		ecs.RegisterComponent[w45],
		ecs.RegisterComponent[w46],
		ecs.RegisterComponent[w47],
		ecs.RegisterComponent[w48],
		ecs.RegisterComponent[w49],
		ecs.RegisterComponent[w50],
		ecs.RegisterComponent[w51],
		ecs.RegisterComponent[w52],
		ecs.RegisterComponent[w53],
		ecs.RegisterComponent[w54],
		ecs.RegisterComponent[w55],
	}
	for i, register := range registrations {
		_, err := register(world)
		require.NoError(t, err, "registration %d should fit within the signature width", i)
	}

	type overflow struct{}
	_, err := ecs.RegisterComponent[overflow](world)
	var tooMany ecs.TooManyComponentTypesError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, ecs.MaxComponentTypes, tooMany.Limit)
}

func TestPackedStoreStaysDense(t *testing.T) {
	world := newTestCoordinator()

	entities := make([]ecs.Entity, 5)
	for i := range entities {
		e, err := world.CreateEntity()
		require.NoError(t, err)
		entities[i] = e
		require.NoError(t, ecs.AddComponent(world, e, Score(10*i)))
	}

	// Remove from the middle and the front; swap-and-pop must keep every
	// surviving value reachable.
	require.NoError(t, ecs.RemoveComponent[Score](world, entities[2]))
	require.NoError(t, ecs.RemoveComponent[Score](world, entities[0]))

	stats := world.CollectStats()
	for _, comp := range stats.Components {
		if comp.Name == "ecs_test.Score" {
			assert.Equal(t, 3, comp.EntityCount, "dense array size must equal live holder count")
		}
	}

	for _, i := range []int{1, 3, 4} {
		score, err := ecs.GetComponent[Score](world, entities[i])
		require.NoError(t, err)
		assert.Equal(t, Score(10*i), *score)
	}
}

func TestComponentsOfIteration(t *testing.T) {
	world := newTestCoordinator()

	want := map[ecs.Entity]float32{}
	for i := 0; i < 4; i++ {
		e, _ := world.CreateEntity()
		require.NoError(t, ecs.AddComponent(world, e, Position{X: float32(i)}))
		want[e] = float32(i)
	}

	iterate, err := ecs.ComponentsOf[Position](world)
	require.NoError(t, err)

	got := map[ecs.Entity]float32{}
	for e, pos := range iterate {
		got[e] = pos.X
	}
	assert.Equal(t, want, got)
}
