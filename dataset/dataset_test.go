package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair_String(t *testing.T) {
	assert.Equal(t, "<+,A>", dataset.Pair{Label: "+", Symbol: "A"}.String())
}

func TestValidateToken(t *testing.T) {
	require.NoError(t, dataset.ValidateToken("NN"))
	for _, bad := range []string{"", "a,b", "<", "x>", "a\nb", "\r"} {
		require.ErrorIs(t, dataset.ValidateToken(bad), dataset.ErrInvalidToken, "%q", bad)
	}
}

func TestParsePair(t *testing.T) {
	p, err := dataset.ParsePair("  <-,T>\t")
	require.NoError(t, err)
	require.Equal(t, dataset.Pair{Label: "-", Symbol: "T"}, p)

	for _, bad := range []string{"+,A", "<+A>", "<+,A", "<,A>", "<+,>", "<+,A,C>", "-\tA"} {
		_, err := dataset.ParsePair(bad)
		require.ErrorIs(t, err, dataset.ErrMalformedLine, "%q", bad)
	}
}

func TestWriteThenRead(t *testing.T) {
	pairs := []dataset.Pair{
		{"+", "A"}, {"+", "C"}, {"+", "A"},
		{"-", "G"}, {"-", "T"}, {"+", "G"},
	}
	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, pairs))
	require.Equal(t, "<+,A>\n<+,C>\n<+,A>\n<-,G>\n<-,T>\n<+,G>\n", buf.String())
	require.Equal(t, buf.Bytes(), dataset.Encode(pairs))

	d, err := dataset.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 6, d.NumInstances())
	require.Equal(t, 2, d.NumStates())
	require.Equal(t, 4, d.NumSymbols())
	// ids follow first appearance
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 0}, {1, 2}, {1, 3}, {0, 2}}, d.Sequence)
	s, err := d.State(1)
	require.NoError(t, err)
	require.Equal(t, "-", s)
	_, err = d.Symbol(9)
	require.ErrorIs(t, err, dataset.ErrUnknownID)
	require.Equal(t, pairs, d.Pairs())

	d.Clear()
	require.Zero(t, d.NumInstances())
	require.Zero(t, d.NumStates())
}

func TestRead_SkipsBlankLinesAndReportsLineNumber(t *testing.T) {
	d, err := dataset.Read(strings.NewReader("<+,A>\n\n<-,C>\n"))
	require.NoError(t, err)
	require.Equal(t, 2, d.NumInstances())

	_, err = dataset.Read(strings.NewReader("<+,A>\n\nNN\tcat\n"))
	require.ErrorIs(t, err, dataset.ErrMalformedLine)
	require.Contains(t, err.Error(), "line 3")
}

func TestDigest(t *testing.T) {
	a := []dataset.Pair{{"+", "A"}, {"-", "C"}}
	b := []dataset.Pair{{"+", "A"}, {"-", "G"}}
	require.Len(t, dataset.Digest(a), 64)
	require.Equal(t, dataset.Digest(a), dataset.Digest(append([]dataset.Pair(nil), a...)))
	require.NotEqual(t, dataset.Digest(a), dataset.Digest(b))
}

func TestFlyweight(t *testing.T) {
	var f dataset.Flyweight
	require.Equal(t, 0, f.Add("x"))
	require.Equal(t, 1, f.Add("y"))
	require.Equal(t, 0, f.Add("x"))
	id, ok := f.ID("y")
	require.True(t, ok)
	require.Equal(t, 1, id)
	require.Equal(t, 2, f.Len())
	f.Reset()
	_, ok = f.ID("x")
	require.False(t, ok)
}
