package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoUpdate_CategoryIDStates(t *testing.T) {
	category := "0190c1f0-7b1e-7c3a-9a51-6f3b2d9e4c10"

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
		wantErr   bool
	}{
		{name: "absent", body: `{"id":"v-1","title":"t"}`},
		{name: "null clears", body: `{"id":"v-1","categoryId":null}`, wantSet: true},
		{name: "value", body: `{"id":"v-1","categoryId":"` + category + `"}`, wantSet: true, wantValue: &category},
		{name: "not a string", body: `{"id":"v-1","categoryId":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var update VideoUpdate
			err := json.Unmarshal([]byte(tt.body), &update)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, update.CategoryID.Set)
			assert.Equal(t, tt.wantValue, update.CategoryID.Value)
		})
	}
}

func TestNullableString_MarshalJSON(t *testing.T) {
	value := "cat"

	out, err := json.Marshal(struct {
		A NullableString `json:"a"`
		B NullableString `json:"b"`
	}{A: NewNullableString(&value), B: NewNullableString(nil)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"cat","b":null}`, string(out))
}
