package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurn_Accessors(t *testing.T) {
	turn := NewTurn(RoleResponder,
		ContinuationToken{Value: "sig-1"},
		TextSegment{Text: "Rooms: Kitchen"},
		ImageSegment{Data: []byte{1, 2}, MimeType: "image/png"},
		TextSegment{Text: "done"},
		ContinuationToken{Value: "sig-2"},
	)

	assert.EqualValues(t, "Rooms: Kitchen\ndone", turn.Text())
	assert.EqualValues(t, []ContinuationToken{{Value: "sig-1"}, {Value: "sig-2"}}, turn.Tokens())
	assert.Len(t, turn.Images(), 1)
}

func TestTurn_Filter(t *testing.T) {
	turn := NewTurn(RoleRequester,
		TextSegment{Text: "a"},
		ImageSegment{Data: []byte{1}, MimeType: "image/png"},
		ContinuationToken{Value: "x"},
	)
	filtered := turn.Filter(func(s Segment) bool {
		_, isImage := s.(ImageSegment)
		return !isImage
	})
	assert.EqualValues(t, RoleRequester, filtered.Role)
	assert.EqualValues(t, []Segment{TextSegment{Text: "a"}, ContinuationToken{Value: "x"}}, filtered.Segments)
	assert.Len(t, turn.Segments, 3, "filter must not mutate the receiver")
}

func TestTurn_Clone(t *testing.T) {
	turn := NewTurn(RoleResponder, ImageSegment{Data: []byte{1, 2, 3}, MimeType: "image/png"})
	cloned := turn.Clone()
	cloned.Segments[0].(ImageSegment).Data[0] = 9
	assert.EqualValues(t, byte(1), turn.Segments[0].(ImageSegment).Data[0])
}

func TestGenerateResponse_First(t *testing.T) {
	testCases := []struct {
		name     string
		response *GenerateResponse
		expectOK bool
	}{
		{name: "nil response"},
		{name: "no candidates", response: &GenerateResponse{}},
		{name: "one candidate", response: &GenerateResponse{Candidates: []Turn{NewTurn(RoleResponder)}}, expectOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := tc.response.First()
			assert.EqualValues(t, tc.expectOK, ok)
		})
	}
}

func TestOptions_Modalities(t *testing.T) {
	var options *Options
	assert.EqualValues(t, []string{ModalityText, ModalityImage}, options.Modalities())
	options = &Options{ResponseModalities: []string{ModalityImage}}
	assert.EqualValues(t, []string{ModalityImage}, options.Modalities())
}
