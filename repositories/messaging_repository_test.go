// File: /repositories/messaging_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestPageViewConflictUpsertsOnDay(t *testing.T) {
	oc := pageViewConflict()

	require.Len(t, oc.Columns, 1)
	assert.Equal(t, "day", oc.Columns[0].Name)

	require.Len(t, oc.DoUpdates, 1)
	assert.Equal(t, "page_views", oc.DoUpdates[0].Column.Name)

	expr, ok := oc.DoUpdates[0].Value.(clause.Expr)
	require.True(t, ok, "counter bump must be a SQL expression, not a literal")
	assert.Equal(t, "site_statistics.page_views + 1", expr.SQL)
}
