package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Valor não numérico cai para o padrão, nunca para zero.
func TestGetInt(t *testing.T) {
	v := viper.New()

	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080), "chave ausente usa o padrão")

	v.Set("HTTP_PORT", "9090")
	assert.Equal(t, 9090, getInt(v, "HTTP_PORT", 8080), "string numérica é convertida")

	v.Set("HTTP_PORT", " 9090 ")
	assert.Equal(t, 9090, getInt(v, "HTTP_PORT", 8080), "espaços ao redor são tolerados")

	v.Set("HTTP_PORT", "abc")
	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080), "string não numérica usa o padrão")

	v.Set("HTTP_PORT", 3000)
	assert.Equal(t, 3000, getInt(v, "HTTP_PORT", 8080))
}

func TestGetString(t *testing.T) {
	v := viper.New()

	assert.Equal(t, "development", getString(v, "APP_ENV", "development"))

	v.Set("APP_ENV", "production")
	assert.Equal(t, "production", getString(v, "APP_ENV", "development"))
}
