package dockerfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionNames(t *testing.T) {
	assert.Equal(t, "from", From{Image: "alpine"}.Name())
	assert.Equal(t, "run", Run{Command: "ls"}.Name())
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instruction Instruction
		want        string
	}{
		{From{Image: "ubuntu:20.04"}, "FROM ubuntu:20.04"},
		{From{Image: "ghcr.io/songstitch/songstitch:latest"}, "FROM ghcr.io/songstitch/songstitch:latest"},
		{From{Image: ""}, "FROM "},
		{Run{Command: "apt-get update && apt-get install -y curl"}, "RUN apt-get update && apt-get install -y curl"},
		{Run{Command: ""}, "RUN "},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.instruction.String())
	}
}

func TestDockerfileString(t *testing.T) {
	doc := &Dockerfile{Instructions: []Instruction{
		From{Image: "alpine"},
		Run{Command: "echo hello"},
	}}
	assert.Equal(t, "FROM alpine\nRUN echo hello\n", doc.String())
}

func TestDockerfileStringEmpty(t *testing.T) {
	doc := &Dockerfile{}
	assert.Equal(t, "", doc.String())
}

func TestDockerfileWrite(t *testing.T) {
	doc := &Dockerfile{Instructions: []Instruction{
		From{Image: "alpine"},
		Run{Command: "echo hello"},
	}}
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Equal(t, doc.String(), buf.String())
}
