package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestUintField(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"num":   42,
		"str":   "18446744073709551615",
		"null":  nil,
		"neg":   -3,
		"frac":  2.5,
		"big":   float64(1 << 60),
		"bool":  true,
		"empty": "",
	})
	require.NoError(t, err)

	tests := []struct {
		key     string
		want    uint64
		wantErr bool
	}{
		{"num", 42, false},
		{"str", 18446744073709551615, false},
		{"null", 0, false},
		{"missing", 0, false},
		{"neg", 0, true},
		{"frac", 0, true},
		{"big", 0, true},
		{"bool", 0, true},
		{"empty", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := uintField(s, tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostFromValue(t *testing.T) {
	v, err := structpb.NewValue(map[string]interface{}{"id": 3, "user_id": 7, "visibility": 2, "is_draft": true})
	require.NoError(t, err)

	p, err := postFromValue(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), p.ID)
	assert.Equal(t, uint64(7), p.OwnerID)
	assert.EqualValues(t, 2, p.Visibility)
	assert.True(t, p.IsDraft)

	_, err = postFromValue(structpb.NewStringValue("x"))
	assert.Error(t, err)
}

func TestIDValue(t *testing.T) {
	assert.Equal(t, float64(42), idValue(42))
	assert.Equal(t, float64(1<<53), idValue(1<<53))
	assert.Equal(t, "9007199254740993", idValue(1<<53+1))
	assert.Equal(t, "18446744073709551615", idValue(18446744073709551615))
}
