package oned

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/bitutil"
	_ "github.com/ericlevine/barcodego/pdf417"
)

type concurrentCase struct {
	sym  barcodego.Symbology
	data string
	opts *barcodego.EncodeOptions
}

type rendering struct {
	bitmap        *bitutil.BitMatrix
	width, height int
}

func concurrentCases() []concurrentCase {
	cases := []concurrentCase{
		{barcodego.Code128, "BBQ1234", nil},
		{barcodego.Code128, "ab\x01CD 99887766", nil},
		{barcodego.EAN13, "400638133393", nil},
		{barcodego.UPCA, "03600029145", nil},
		{barcodego.EAN128, "(01)09501101530003(10)AB123(17)140704", nil},
		{barcodego.Code39, "CODE 39", &barcodego.EncodeOptions{Checksum: true}},
		{barcodego.Int2of5, "1234567", &barcodego.EncodeOptions{Checksum: true}},
	}
	// Each level needs its own generator degree, so goroutines race to fill
	// the shared generator cache.
	for _, level := range []int{0, 2, 5, 8} {
		cases = append(cases, concurrentCase{
			sym:  barcodego.PDF417,
			data: fmt.Sprintf("level %d: The quick brown fox 0123456789", level),
			opts: &barcodego.EncodeOptions{PDF417ErrorCorrection: level, PDF417Compaction: barcodego.CompactionAuto},
		})
	}
	return cases
}

func renderCase(c concurrentCase) (rendering, error) {
	bc, err := barcodego.New(c.sym, c.data, c.opts)
	if err != nil {
		return rendering{}, err
	}
	w, h := bc.Size()
	return rendering{bitmap: bc.Bitmap(), width: w, height: h}, nil
}

func TestConcurrentEncoding(t *testing.T) {
	const workers = 8
	cases := concurrentCases()

	results := make([][]rendering, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		results[w] = make([]rendering, len(cases))
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			// Start each worker at a different case so symbologies overlap.
			for k := range cases {
				i := (k + w) % len(cases)
				r, err := renderCase(cases[i])
				if !assert.NoError(t, err, "%v %q", cases[i].sym, cases[i].data) {
					continue
				}
				results[w][i] = r
			}
		}(w)
	}
	wg.Wait()

	for i, c := range cases {
		want, err := renderCase(c)
		require.NoError(t, err)
		for w := 0; w < workers; w++ {
			got := results[w][i]
			require.NotNil(t, got.bitmap, "worker %d, %v %q", w, c.sym, c.data)
			assert.True(t, want.bitmap.Equals(got.bitmap), "worker %d, %v %q", w, c.sym, c.data)
			assert.Equal(t, want.width, got.width)
			assert.Equal(t, want.height, got.height)
		}
	}
}
