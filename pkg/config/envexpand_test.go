package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv_Basic(t *testing.T) {
	t.Setenv("EXPAND_TEST_VAR", "value123")

	out := ExpandEnv([]byte("key: {{.EXPAND_TEST_VAR}}"))
	assert.Equal(t, "key: value123", string(out))
}

func TestExpandEnv_Missing(t *testing.T) {
	out := ExpandEnv([]byte("key: '{{.DEFINITELY_NOT_SET_ANYWHERE}}'"))
	assert.Equal(t, "key: ''", string(out))
}

func TestExpandEnv_DollarSignsUntouched(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"` + "\n" + `password: "p@ss$word"`)
	out := ExpandEnv(in)
	assert.Equal(t, string(in), string(out))
}

func TestExpandEnv_MalformedTemplatePassesThrough(t *testing.T) {
	in := []byte("key: {{.UNCLOSED")
	out := ExpandEnv(in)
	assert.Equal(t, string(in), string(out))
}

func TestExpandEnv_ValueWithEquals(t *testing.T) {
	t.Setenv("EXPAND_EQ_VAR", "a=b=c")

	out := ExpandEnv([]byte("key: {{.EXPAND_EQ_VAR}}"))
	assert.Equal(t, "key: a=b=c", string(out))
}
