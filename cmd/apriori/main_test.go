package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "apriori v0.1.0\n", out.String())
}

func TestCLIParserCommands(t *testing.T) {
	cmd := cliParser()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"mine", "set", "recommend", "version"})
}

func TestRecommendValidate(t *testing.T) {
	config := &recommendCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	assert.Error(t, config.Validate())
	config.rulesInput = "rules.json"
	assert.NoError(t, config.Validate())
	config.redisAddr = "localhost:6379"
	assert.Error(t, config.Validate())
}
