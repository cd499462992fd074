package cliparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"ram"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.LearningsPath)
	assert.False(t, cfg.Serve)
	assert.Equal(t, []string{"ram"}, cfg.Args)
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("NEPALIFY_PORT", "9000")
	t.Setenv("NEPALIFY_VOTER_DB", "voters.db")

	cfg, err := ParseFlags([]string{"-serve"})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "voters.db", cfg.VoterDB)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	t.Setenv("NEPALIFY_PORT", "9000")

	cfg, err := ParseFlags([]string{"-port", "7000", "ram"})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestParseFlagsLearnArguments(t *testing.T) {
	cfg, err := ParseFlags([]string{"-learn", "-learnings", "l.db", "gopal", "गोपाल"})
	require.NoError(t, err)
	assert.True(t, cfg.Learn)
	assert.Equal(t, []string{"gopal", "गोपाल"}, cfg.Args)
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"learn without learnings db", []string{"-learn", "gopal", "गोपाल"}},
		{"learn with wrong arity", []string{"-learn", "-learnings", "l.db", "gopal"}},
		{"unlearn with wrong arity", []string{"-unlearn", "-learnings", "l.db"}},
		{"import without file", []string{"-import", "-learnings", "l.db"}},
		{"serve without voter db", []string{"-serve"}},
		{"invalid port", []string{"-port", "0", "ram"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseFlags(test.args)
			assert.Error(t, err)
		})
	}
}
