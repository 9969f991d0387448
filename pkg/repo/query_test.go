package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM t", Join("SELECT 1", "", "FROM t"))
	assert.Equal(t, "", Join("", "  "))
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "WHERE tenant_id = $1 AND id = $2", JoinWhere("tenant_id = $1", "id = $2"))
	assert.Equal(t, "WHERE id = $1", JoinWhere("", "id = $1"))
	assert.Equal(t, "", JoinWhere())
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "LIMIT 10 OFFSET 20", FormatLimitOffset(10, 20))
	assert.Equal(t, "LIMIT 10", FormatLimitOffset(10, 0))
	assert.Equal(t, "OFFSET 20", FormatLimitOffset(0, 20))
	assert.Equal(t, "", FormatLimitOffset(0, 0))
}
