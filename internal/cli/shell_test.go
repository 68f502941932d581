package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShell(t *testing.T) {
	tests := map[string]struct {
		input      string
		wantOutput []string
	}{
		"exit": {
			input:      "6\n",
			wantOutput: []string{"WELCOME TO THE METRO APP", "LIST OF ACTIONS", "THANK YOU FOR USING THE METRO APP"},
		},
		"list stations": {
			input:      "1\n6\n",
			wantOutput: []string{"1. AIIMS~Y", "20. Yamuna Bank~B"},
		},
		"show map": {
			input:      "2\n6\n",
			wantOutput: []string{"Delhi Metro Map", "IGI Airport~O =>"},
		},
		"shortest distance": {
			input:      "3\nNoida Sector 62~B\nIGI Airport~O\n6\n",
			wantOutput: []string{"The Shortest Distance between Noida Sector 62~B and IGI Airport~O is 42 km"},
		},
		"shortest time": {
			input:      "4\nRajiv Chowk~BY\nNew Delhi~YO\n6\n",
			wantOutput: []string{"The Minimum Time to reach Rajiv Chowk~BY to New Delhi~YO is 3 minutes"},
		},
		"interchanges": {
			input:      "5\nA~X  B~XY  C~Y\n6\n",
			wantOutput: []string{"Interchanges:\nB~XY ==> C~Y\nC~Y\n0\nA~X\n"},
		},
		"invalid station keeps going": {
			input:      "3\nNowhere~Q\nSaket~Y\n1\n6\n",
			wantOutput: []string{msgInvalidStations, "1. AIIMS~Y", "THANK YOU"},
		},
		"malformed route keeps going": {
			input:      "5\nA~X  B\n6\n",
			wantOutput: []string{"error: annotate route: malformed station name", "THANK YOU"},
		},
		"invalid action": {
			input:      "9\nabc\n6\n",
			wantOutput: []string{"Please Enter a Valid Action Number"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, _ := captureOutput(t, tt.input)

			require.NoError(t, RunShell([]string{"-config", testConfig(t, "")}))
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunShell_EndOfInput(t *testing.T) {
	out, _ := captureOutput(t, "1\n")

	require.NoError(t, RunShell([]string{"-config", testConfig(t, "")}))
	assert.NotContains(t, out.String(), "THANK YOU")
	assert.Equal(t, 2, strings.Count(out.String(), "LIST OF ACTIONS"))
}

func TestRunShell_EndOfInputMidQuery(t *testing.T) {
	captureOutput(t, "3\nSaket~Y\n")

	assert.NoError(t, RunShell([]string{"-config", testConfig(t, "")}))
}
