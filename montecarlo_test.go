package cobra

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSamplesWritesBatch(t *testing.T) {
	fps := writeModels(t)[:2] // hyper, sane
	outdir := t.TempDir() + string(os.PathSeparator)
	const n = 3

	s := NewScreener(testDiet())
	s.GenerateSamples(fps, n, 2, outdir)

	ents, err := os.ReadDir(strings.TrimSuffix(outdir, string(os.PathSeparator)))
	require.NoError(t, err)

	var ssfp string
	nsum, ndiet := 0, 0
	dietfps := []string{}
	for _, e := range ents {
		switch {
		case strings.HasSuffix(e.Name(), ".samplespace.csv"):
			ssfp = outdir + e.Name()
		case strings.HasSuffix(e.Name(), ".summary.csv"):
			nsum++
		case strings.HasSuffix(e.Name(), ".diet.txt"):
			ndiet++
			dietfps = append(dietfps, outdir+e.Name())
		}
	}
	require.NotEmpty(t, ssfp)
	require.Equal(t, n, nsum) // one summary and one diet per sample
	require.Equal(t, n, ndiet)

	// sample space: n rows of sample index plus one column per uptake
	b, err := os.ReadFile(ssfp)
	require.NoError(t, err)
	lns := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lns, n)
	for _, ln := range lns {
		require.Len(t, strings.Split(ln, ","), 2)
	}

	// perturbed uptakes stay within a decade of nominal
	for _, fp := range dietfps {
		b, err := os.ReadFile(fp)
		require.NoError(t, err)
		lns := strings.Split(strings.TrimSpace(string(b)), "\n")
		require.Len(t, lns, 2)
		flds := strings.Split(lns[1], "\t")
		require.Equal(t, "EX_glc(e)", flds[0])
		u, err := strconv.ParseFloat(flds[1], 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, u, 20.)
		require.LessOrEqual(t, u, 2000.)
	}
}
