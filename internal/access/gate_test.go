package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsElevated(t *testing.T) {
	gate := NewGate([]string{"teacher@school.example", "head@school.example", ""})

	assert.True(t, gate.IsElevated("teacher@school.example"))
	assert.True(t, gate.IsElevated("head@school.example"))
	assert.False(t, gate.IsElevated("student@school.example"))

	// membership is case-sensitive as configured
	assert.False(t, gate.IsElevated("Teacher@school.example"))
	assert.False(t, gate.IsElevated(""))
}

func TestResolve(t *testing.T) {
	gate := NewGate([]string{"teacher@school.example"})

	assert.Equal(t, ScopeAll, gate.Resolve(ScopeAll, "teacher@school.example"))
	assert.Equal(t, ScopeOwn, gate.Resolve(ScopeOwn, "teacher@school.example"))

	// non-elevated identities can never reach ScopeAll
	assert.Equal(t, ScopeOwn, gate.Resolve(ScopeAll, "student@school.example"))
	assert.Equal(t, ScopeOwn, gate.Resolve(Scope("bogus"), "teacher@school.example"))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, AllRecordsLimit, Limit(ScopeAll))
	assert.Equal(t, OwnRecordsLimit, Limit(ScopeOwn))
	assert.Equal(t, OwnRecordsLimit, Limit(Scope("bogus")))
}
