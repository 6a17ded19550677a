package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileWithLineNum(t *testing.T) {
	t.Log("file line with num: ", FileWithLineNum())
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("FooBar", "foobar"))
	assert.True(t, EqualFold("ÉCOLE", "école"))
	assert.False(t, EqualFold("Foo", "Bar"))
	assert.Equal(t, Fold("Name"), Fold("NAME"))
}

func TestToString(t *testing.T) {
	cases := []struct {
		value interface{}
		want  string
	}{
		{"abc", "abc"},
		{[]byte("abc"), "abc"},
		{int16(-3), "-3"},
		{uint64(42), "42"},
		{1.5, "1.5"},
		{true, "true"},
		{nil, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToString(c.value))
	}
}
