package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeTags(t *testing.T) {
	tags := SynthesizeTags("Data Structures and Algorithms", "end-sem", "Computer Science")

	// Words of three characters or fewer are dropped.
	assert.Equal(t, []string{"data", "structures", "algorithms", "end-sem", "computer science"}, tags)
}

func TestSynthesizeTagsCapsAtFive(t *testing.T) {
	tags := SynthesizeTags("Advanced Theory Of Computation Machines Automata Grammars", "notes", "CSE")
	assert.Len(t, tags, 5)
}

func TestSynthesizeTagsDedupesFirstWins(t *testing.T) {
	tags := SynthesizeTags("Notes Notes Notes", "notes", "")
	assert.Equal(t, []string{"notes"}, tags)
}

func TestSynthesizeTagsSkipsMissingValues(t *testing.T) {
	assert.Empty(t, SynthesizeTags("NA", "", ""))
	assert.Empty(t, SynthesizeTags("", "", ""))
}
