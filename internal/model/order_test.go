package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	invalid := []OrderStatus{
		"",
		"new",
		"NEW",
		"Being Cooked",
		"Delivered ",
	}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "expected %q to be invalid", s)
	}
}

func TestOrderSchemaConstraints(t *testing.T) {
	cache := &sync.Map{}

	orderSchema, err := schema.Parse(&Order{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)

	// Referential integrity: orders must point at existing users, items at
	// existing dishes, so a bad id aborts the insert transaction.
	for field, table := range map[string]string{
		"Customer":   "users",
		"Restaurant": "users",
	} {
		rel, ok := orderSchema.Relationships.Relations[field]
		require.True(t, ok, "missing %s relation", field)
		assert.Equal(t, schema.BelongsTo, rel.Type)
		assert.Equal(t, table, rel.FieldSchema.Table)
	}

	itemSchema, err := schema.Parse(&OrderItem{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	dishRel, ok := itemSchema.Relationships.Relations["Dish"]
	require.True(t, ok, "missing Dish relation")
	assert.Equal(t, schema.BelongsTo, dishRel.Type)
	assert.Equal(t, "dishes", dishRel.FieldSchema.Table)
}

func TestOrderSchemaJoinedFields(t *testing.T) {
	cache := &sync.Map{}

	orderSchema, err := schema.Parse(&Order{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	itemSchema, err := schema.Parse(&OrderItem{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)

	// Display fields are populated from JOINs on reads and must never become
	// real columns or be written back.
	check := func(s *schema.Schema, names ...string) {
		for _, name := range names {
			field := s.LookUpField(name)
			require.NotNil(t, field, "missing field %s", name)
			assert.True(t, field.Readable, "%s should be readable", name)
			assert.False(t, field.Creatable, "%s should not be creatable", name)
			assert.False(t, field.Updatable, "%s should not be updatable", name)
			assert.True(t, field.IgnoreMigration, "%s should be excluded from migration", name)
		}
	}
	check(orderSchema, "CustomerName", "RestaurantName")
	check(itemSchema, "Name", "Description", "Category")
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleRestaurant.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}
