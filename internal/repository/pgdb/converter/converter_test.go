package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []string
	}{
		{"nil bytes", nil, nil},
		{"empty bytes", []byte{}, nil},
		{"sql null literal", []byte(`null`), nil},
		{"json object", []byte(`{"a":1}`), nil},
		{"json number", []byte(`42`), nil},
		{"json string", []byte(`"red"`), nil},
		{"invalid json", []byte(`{not json`), nil},
		{"string array", []byte(`["red","blue"]`), []string{"red", "blue"}},
		{"mixed array keeps only strings in order", []byte(`["red",1,null,"blue",true,["x"]]`), []string{"red", "blue"}},
		{"empty array", []byte(`[]`), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStringList(tt.raw))
		})
	}
}

func TestNormalizeStringListIdempotent(t *testing.T) {
	first := NormalizeStringList([]byte(`["red",7,"blue"]`))
	second := NormalizeStringList(MarshalStringList(first))
	assert.Equal(t, first, second)
}

func TestMarshalStringList(t *testing.T) {
	assert.Nil(t, MarshalStringList(nil))
	assert.Nil(t, MarshalStringList([]string{}))
	assert.JSONEq(t, `["red","blue"]`, string(MarshalStringList([]string{"red", "blue"})))
}
