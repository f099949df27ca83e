package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemPatch_NameAndPrice(t *testing.T) {
	patch, err := ParseItemPatch([]byte(`{"name":"Pear","price":2.5}`))
	require.NoError(t, err)
	require.NotNil(t, patch.Name)
	require.NotNil(t, patch.Price)
	assert.Equal(t, "Pear", *patch.Name)
	assert.Equal(t, 2.5, *patch.Price)
}

func TestParseItemPatch_Partial(t *testing.T) {
	patch, err := ParseItemPatch([]byte(`{"price":0}`))
	require.NoError(t, err)
	assert.Nil(t, patch.Name)
	require.NotNil(t, patch.Price)
	assert.Zero(t, *patch.Price)

	patch, err = ParseItemPatch([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())
}

func TestParseItemPatch_UnknownField(t *testing.T) {
	_, err := ParseItemPatch([]byte(`{"name":"Pear","color":"green"}`))
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "color")
}

func TestParseItemPatch_DeletedForbidden(t *testing.T) {
	_, err := ParseItemPatch([]byte(`{"deleted":false}`))
	assert.ErrorIs(t, err, ErrForbiddenField)

	// deleted is reported even next to other unknown keys
	_, err = ParseItemPatch([]byte(`{"aaa":1,"deleted":true}`))
	assert.ErrorIs(t, err, ErrForbiddenField)
}

func TestParseItemPatch_InvalidValues(t *testing.T) {
	bodies := []string{
		`[]`,
		`null`,
		`not json`,
		`{"name":null}`,
		`{"name":5}`,
		`{"price":"cheap"}`,
		`{"price":null}`,
		`{"price":-1}`,
	}
	for _, body := range bodies {
		_, err := ParseItemPatch([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidArgument, body)
	}
}
