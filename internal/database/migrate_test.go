package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	content := "CREATE TABLE quizzes (id NUMBER(19))\n/\nCREATE SEQUENCE quizzes_seq\n/\nCREATE INDEX idx ON quizzes (id)\n"

	stmts := splitStatements(content)
	require.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE quizzes (id NUMBER(19))", stmts[0])
	assert.Equal(t, "CREATE SEQUENCE quizzes_seq", stmts[1])
}

func TestSplitStatementsSingle(t *testing.T) {
	stmts := splitStatements("DROP TABLE quizzes")
	require.Len(t, stmts, 1)
	assert.Equal(t, "DROP TABLE quizzes", stmts[0])
}

func TestSplitStatementsSkipsBlanks(t *testing.T) {
	assert.Empty(t, splitStatements("  \n/\n  "))
}
