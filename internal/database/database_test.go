package database

import (
	"database/sql"
	"errors"
	"testing"

	"shipdocs/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMySQLDSN(t *testing.T) {
	tests := []struct {
		name    string
		config  config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name: "valid config with password",
			config: config.DatabaseConfig{
				Host:     "localhost",
				Port:     "3306",
				User:     "root",
				Password: "secret",
				Name:     "shipdocs",
			},
			want: "root:secret@tcp(localhost:3306)/shipdocs?charset=utf8mb4&parseTime=true&loc=Local",
		},
		{
			name: "valid config without password",
			config: config.DatabaseConfig{
				Host: "localhost",
				Port: "3306",
				User: "root",
				Name: "shipdocs",
			},
			want: "root@tcp(localhost:3306)/shipdocs?charset=utf8mb4&parseTime=true&loc=Local",
		},
		{
			name: "missing host",
			config: config.DatabaseConfig{
				Port: "3306",
				User: "root",
				Name: "shipdocs",
			},
			wantErr: true,
		},
		{
			name: "missing user",
			config: config.DatabaseConfig{
				Host: "localhost",
				Port: "3306",
				Name: "shipdocs",
			},
			wantErr: true,
		},
		{
			name: "missing database name",
			config: config.DatabaseConfig{
				Host: "localhost",
				Port: "3306",
				User: "root",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildMySQLDSN(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMySQL_InvalidConfig(t *testing.T) {
	_, err := NewMySQL(config.DatabaseConfig{})
	assert.Error(t, err)
}

func TestNewMySQL_PingFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) { return mockDB, nil }
	defer func() { sqlOpen = orig }()

	_, err = NewMySQL(config.DatabaseConfig{
		Host: "localhost",
		Port: "3306",
		User: "root",
		Name: "shipdocs",
	})
	assert.ErrorContains(t, err, "db ping")
	assert.NoError(t, mock.ExpectationsWereMet())
}
