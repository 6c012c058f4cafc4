package listupdate

import (
	"testing"

	"github.com/karlseguin/listupdate/assert"
)

func Test_Run_AccumulatesCosts(t *testing.T) {
	sequence := []int{4, 0, 1, 2}
	result, err := Run[int](NewMTF([]int{0, 1, 2, 3, 4}), sequence)
	assert.Nil(t, err)
	assert.List(t, result.Sequence, sequence)
	assert.Equal(t, len(result.Accesses), 4)

	total := 0
	for i, access := range result.Accesses {
		assert.Equal(t, access.Element, sequence[i])
		total += access.Cost
	}
	assert.Equal(t, result.TotalCost, total)
	assert.Equal(t, result.TotalCost, 14)
}

func Test_Run_ResetsBeforeRunning(t *testing.T) {
	mtf := NewMTF([]int{0, 1, 2, 3, 4})
	mtf.Access(4)
	result, _ := Run[int](mtf, []int{4})
	assert.Equal(t, result.TotalCost, 5)
}

func Test_Run_BindsLookaheadEngines(t *testing.T) {
	imtf := NewIMTF([]int{0, 1, 2, 3, 4})
	imtf.Bind([]int{0})
	result, _ := Run[int](imtf, []int{4, 4})
	assert.True(t, result.Accesses[0].Promoted)
	assert.Equal(t, result.TotalCost, 6)
}

func Test_Run_DiscardsPartialResultsOnFailure(t *testing.T) {
	result, err := Run[int](NewMTF([]int{0, 1, 2}), []int{2, 1, 7, 0})
	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Nil(t, result)

	result, err = NewIMTF([]int{0, 1, 2}).Process([]int{2, 7})
	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Nil(t, result)
}

func Test_Run_EmptySequence(t *testing.T) {
	result, err := NewMTF([]int{0, 1}).Process(nil)
	assert.Nil(t, err)
	assert.Equal(t, result.TotalCost, 0)
	assert.Equal(t, len(result.Accesses), 0)
}

func Test_Run_SequenceIsCopied(t *testing.T) {
	sequence := []int{1, 0}
	result, _ := NewMTF([]int{0, 1}).Process(sequence)
	sequence[0] = 0
	assert.List(t, result.Sequence, []int{1, 0})
}

func Test_Run_KeepsAPermutationOfTheInitialConfiguration(t *testing.T) {
	result, _ := NewMTF([]string{"a", "b", "c", "d"}).Process([]string{"d", "b", "d", "a", "c", "c", "b"})
	for _, access := range result.Accesses {
		assert.Permutation(t, access.Configuration, []string{"a", "b", "c", "d"})
		assert.Equal(t, access.Configuration[0], access.Element)
	}
}
