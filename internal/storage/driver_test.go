package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverFor(t *testing.T) {
	tests := []struct {
		name       string
		conn       string
		token      string
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "turso url with token",
			conn:       "libsql://db.turso.io",
			token:      "secret",
			wantDriver: "libsql",
			wantDSN:    "libsql://db.turso.io?authToken=secret",
		},
		{
			name:       "url already carrying token",
			conn:       "libsql://db.turso.io?authToken=abc",
			token:      "secret",
			wantDriver: "libsql",
			wantDSN:    "libsql://db.turso.io?authToken=abc",
		},
		{
			name:       "https without token",
			conn:       "https://db.turso.io",
			wantDriver: "libsql",
			wantDSN:    "https://db.turso.io",
		},
		{
			name:       "plain path",
			conn:       "/tmp/loadout.db",
			wantDriver: "sqlite",
			wantDSN:    "file:/tmp/loadout.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		},
		{
			name:       "file url with query",
			conn:       "file:./local.db?mode=rwc",
			wantDriver: "sqlite",
			wantDSN:    "file:./local.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := driverFor(tt.conn, tt.token)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}

	_, _, err := driverFor("", "")
	assert.Error(t, err)
}
