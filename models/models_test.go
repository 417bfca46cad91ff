package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRecordRequestIsEmpty(t *testing.T) {
	assert.True(t, UpdateRecordRequest{}.IsEmpty())

	name := "Alice"
	assert.False(t, UpdateRecordRequest{Name: &name}.IsEmpty())
}

func TestUpdateRecordRequestPartialDecode(t *testing.T) {
	var req UpdateRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"salary": 72000.5}`), &req))

	require.NotNil(t, req.Salary)
	assert.Equal(t, 72000.5, *req.Salary)
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Age)
	assert.Nil(t, req.Department)
	assert.Nil(t, req.Experience)
}

func TestRecordMarshalsNullFields(t *testing.T) {
	data, err := json.Marshal(Record{ID: "r1"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["age"])
	assert.Nil(t, decoded["salary"])
}
