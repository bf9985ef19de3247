package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego/bitutil"
	"github.com/ericlevine/barcodego/output"
)

func render(t *testing.T, m Module, barWidth, barHeight int) *bitutil.BitMatrix {
	t.Helper()
	w := m.WidthInBars() * barWidth
	h := m.Height(barWidth, barHeight)
	bm := output.NewBitmap(w, h)
	require.NoError(t, bm.BeginDraw())
	drawn := m.Draw(bm, 0, 0, barWidth, barHeight)
	require.NoError(t, bm.EndDraw(w, h))
	assert.Equal(t, w, drawn)
	return bm.Matrix()
}

func TestBars(t *testing.T) {
	m := New("A", 2, 1, 1, 3)
	assert.Equal(t, "A", m.Symbol())
	assert.Equal(t, 7, m.WidthInBars())
	assert.Equal(t, 10, m.Height(2, 10))

	widths := m.Widths()
	widths[0] = 9
	assert.Equal(t, []int{2, 1, 1, 3}, m.Widths(), "Widths must return a copy")

	bits := render(t, m, 1, 1)
	assert.Equal(t, "XX.X...\n", bits.StringWithChars("X", "."))

	assert.Panics(t, func() { New("bad", 1, -1) })
}

func TestBarsLeadingSpace(t *testing.T) {
	m := New("0", 0, 3, 2, 1, 1)
	assert.Equal(t, 7, m.WidthInBars())
	bits := render(t, m, 1, 1)
	assert.Equal(t, "...XX.X\n", bits.StringWithChars("X", "."))
}

func TestGuardIsTaller(t *testing.T) {
	g := NewGuard("", 5, 1, 1, 1)
	assert.Equal(t, 30, g.Height(2, 20))
	c := NewComposite(New("1", 3, 2), g)
	assert.Equal(t, 30, c.Height(2, 20))
}

func TestComposite(t *testing.T) {
	c := NewComposite(NewBlank(2), New("a", 1, 1), nil, New("b", 2), NewBlank(1))
	assert.Equal(t, "ab", c.Symbol())
	assert.Equal(t, 7, c.WidthInBars())
	assert.Len(t, c.Children(), 4)

	bits := render(t, c, 1, 1)
	assert.Equal(t, "..X.XX.\n", bits.StringWithChars("X", "."))
}

func TestSeparatorErases(t *testing.T) {
	bm := output.NewBitmap(4, 1)
	require.NoError(t, bm.BeginDraw())
	bm.DrawBar(0, 0, 4, 1, true)
	NewSeparator(2).Draw(bm, 1, 0, 1, 1)
	assert.Equal(t, "X..X\n", bm.Matrix().StringWithChars("X", "."))

	// the colours are restored afterwards
	bm.DrawBar(1, 0, 1, 1, true)
	assert.Equal(t, "XX.X\n", bm.Matrix().StringWithChars("X", "."))
}

func TestWithoutBlanks(t *testing.T) {
	c := NewComposite(NewBlank(10), NewComposite(NewBlank(10), New("x", 1)), NewBlank(10))
	stripped := WithoutBlanks(c)
	require.NotNil(t, stripped)
	assert.Equal(t, 1, stripped.WidthInBars())
	assert.Nil(t, WithoutBlanks(NewBlank(3)))
	assert.Nil(t, WithoutBlanks(NewComposite(NewBlank(3))))
}

func TestPostnet(t *testing.T) {
	p := NewPostnet("1", "00011")
	assert.Equal(t, 10, p.WidthInBars())
	assert.Equal(t, []int{1, 1, 1, 2, 2}, p.Heights())

	bits := render(t, p, 1, 4)
	assert.Equal(t,
		"......X.X.\n"+
			"......X.X.\n"+
			"X.X.X.X.X.\n"+
			"X.X.X.X.X.\n",
		bits.StringWithChars("X", "."))
}

func TestMatrix(t *testing.T) {
	bits := bitutil.ParseStringMatrix("XX.X\n.XX.\n", "X", ".")
	m := NewMatrix("data", bits)
	assert.Equal(t, 4, m.WidthInBars())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 6, m.Height(1, 3))
	assert.Equal(t, []int{2, 1, 1}, m.Widths())

	drawn := render(t, m, 2, 1)
	assert.Equal(t, "XXXX..XX\n..XXXX..\n", drawn.StringWithChars("X", "."))
}

func TestEqualAndHash(t *testing.T) {
	a := New("a", 1, 2, 3)
	b := New("b", 1, 2, 3)
	c := New("c", 1, 2, 4)
	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
	assert.False(t, Equal(a, c))

	p := NewPostnet("1", "00011")
	q := NewPostnet("2", "11000")
	assert.False(t, Equal(p, q), "same widths but different heights")
	assert.NotEqual(t, Hash(p), Hash(q))
	assert.False(t, Equal(p, New("", 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)))

	m1 := NewMatrix("", bitutil.ParseStringMatrix("X.\n", "X", "."))
	m2 := NewMatrix("", bitutil.ParseStringMatrix("X.\n", "X", "."))
	assert.True(t, Equal(m1, m2))
	assert.Equal(t, Hash(m1), Hash(m2))
	assert.False(t, Equal(m1, New("", 1, 1)))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, nil))
}

func TestTable(t *testing.T) {
	tbl := NewTable(New("0", 1, 1), New("1", 2, 1), New("START", 3, 1))
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 2, tbl.Index("START"))
	assert.Equal(t, -1, tbl.Index("missing"))
	m, ok := tbl.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, m.Widths())
	assert.Equal(t, "0", tbl.At(0).Symbol())

	keys := tbl.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"0", "1", "START"}, tbl.Keys())

	assert.Panics(t, func() { NewTable(New("x", 1), New("x", 2)) })
}
