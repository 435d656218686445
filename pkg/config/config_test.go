package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		set   any
		unset bool
		want  int
	}{
		{name: "unset uses default", unset: true, want: 5432},
		{name: "int value", set: 6000, want: 6000},
		{name: "numeric string", set: "6001", want: 6001},
		{name: "padded numeric string", set: " 6002 ", want: 6002},
		{name: "malformed string falls back to default", set: "abc", want: 5432},
		{name: "empty string falls back to default", set: "", want: 5432},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			if !tt.unset {
				v.Set("DB_PORT", tt.set)
			}
			assert.Equal(t, tt.want, getInt(v, "DB_PORT", 5432))
		})
	}
}

func TestGetString(t *testing.T) {
	v := viper.New()
	assert.Equal(t, "localhost", getString(v, "DB_HOST", "localhost"))
	v.Set("DB_HOST", "db.internal")
	assert.Equal(t, "db.internal", getString(v, "DB_HOST", "localhost"))
}

func TestDSN_EncodesCredentials(t *testing.T) {
	c := DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "etransport_db", SSLMode: "disable",
	}
	dsn := c.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "special characters in the password are URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_DatabaseURLWins(t *testing.T) {
	c := DBConfig{DatabaseURL: "postgres://u:p@db:5432/x", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/x", c.ConnectionString())
}
