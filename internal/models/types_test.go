package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestStringListFieldsHaveDataType(t *testing.T) {
	columns := map[interface{}][]string{
		&Product{}: {"images", "tags"},
		&Inquiry{}: {"product_ids"},
	}
	for model, names := range columns {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, name := range names {
			field := s.LookUpField(name)
			require.NotNil(t, field, name)
			assert.Equal(t, schema.DataType("text"), field.DataType, name)
		}
	}
}

func TestStringListValueScan(t *testing.T) {
	value, err := StringList{"a.jpg", "b, c.jpg"}.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, StringList{"a.jpg", "b, c.jpg"}, scanned)

	value, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
