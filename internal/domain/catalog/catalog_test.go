package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlansByID(t *testing.T) {
	t.Run("KeysByIdentity", func(t *testing.T) {
		a := &Plan{ID: uuid.New(), DisplayName: "Premium", Price: "R$ 99,90"}
		b := &Plan{ID: uuid.New(), DisplayName: "Premium", Price: "R$ 149,90"}

		lookup := PlansByID([]*Plan{a, b})

		require.Len(t, lookup, 2, "plans sharing a display name must not collide")
		assert.Same(t, a, lookup[a.ID])
		assert.Same(t, b, lookup[b.ID])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		lookup := PlansByID(nil)
		assert.Empty(t, lookup)
	})
}

func TestProductsByID(t *testing.T) {
	a := &Product{ID: uuid.New(), DisplayName: "Setup fee", Price: "R$ 10,00"}
	b := &Product{ID: uuid.New(), DisplayName: "Setup fee", Price: "R$ 20,00"}

	lookup := ProductsByID([]*Product{a, b})

	require.Len(t, lookup, 2)
	assert.Same(t, a, lookup[a.ID])
	assert.Same(t, b, lookup[b.ID])
}
