package barcodego

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego/module"
	"github.com/ericlevine/barcodego/output"
)

// fakeEncoder is a minimal linear encoder registered under Code39 for the
// facade tests; the real encoders live in sub-packages that import this one.
type fakeEncoder struct {
	data string
}

func (f *fakeEncoder) Symbology() Symbology { return Code39 }
func (f *fakeEncoder) Data() string         { return f.data }
func (f *fakeEncoder) Label() string        { return "*" + f.data + "\x00*" }

func (f *fakeEncoder) EncodeData() []module.Module {
	return []module.Module{module.New("A", 1, 1, 2), module.New("B", 2, 1)}
}

func (f *fakeEncoder) Checksum() module.Module  { return module.New("", 1, 1) }
func (f *fakeEncoder) PreAmble() module.Module  { return module.NewBlank(2) }
func (f *fakeEncoder) PostAmble() module.Module { return module.NewBlank(2) }

func init() {
	RegisterEncoder(Code39, func(data string, _ *EncodeOptions) (Encoder, error) {
		if data == "bad" {
			return nil, Errorf(Code39, data, 1, "invalid character %q", 'a')
		}
		return &fakeEncoder{data: data}, nil
	})
}

func newFake(t *testing.T) *Barcode {
	t.Helper()
	bc, err := New(Code39, "AB", nil)
	require.NoError(t, err)
	return bc
}

func TestNewErrors(t *testing.T) {
	_, err := New(Symbology(99), "AB", nil)
	assert.ErrorIs(t, err, ErrEncoding)
	assert.False(t, Registered(Symbology(99)))

	_, err = New(Code39, "", nil)
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, -1, encErr.Pos)
	assert.Equal(t, "CODE_39: no data to encode", err.Error())

	_, err = New(Code39, "bad", nil)
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 1, encErr.Pos)
	assert.Equal(t, "bad", encErr.Data)
	assert.Equal(t, "CODE_39: invalid character 'a' (position 1)", err.Error())
}

func TestModulesOrder(t *testing.T) {
	mods, err := Encode(Code39, "AB", nil)
	require.NoError(t, err)
	require.Len(t, mods, 5)
	assert.IsType(t, &module.Blank{}, mods[0])
	assert.Equal(t, "A", mods[1].Symbol())
	assert.Equal(t, "B", mods[2].Symbol())
	assert.Equal(t, []int{1, 1}, mods[3].Widths())
	assert.IsType(t, &module.Blank{}, mods[4])
}

func TestGeometryDefaults(t *testing.T) {
	bc := newFake(t)
	assert.Equal(t, DefaultBarWidth, bc.BarWidth())
	assert.Equal(t, DefaultResolution, bc.Resolution())
	assert.Equal(t, DefaultResolution/2, bc.BarHeight())
	assert.True(t, bc.DrawingText())
	assert.True(t, bc.DrawingQuietSection())
	assert.Equal(t, "*AB*", bc.Label())
	assert.Equal(t, "AB", bc.Data())
	assert.Equal(t, Code39, bc.Symbology())
}

func TestSetters(t *testing.T) {
	bc := newFake(t)

	bc.SetBarWidth(0)
	assert.Equal(t, 1, bc.BarWidth())
	bc.SetBarWidth(3)
	assert.Equal(t, 3, bc.BarWidth())

	bc.SetResolution(300)
	assert.Equal(t, 150, bc.BarHeight())
	bc.SetResolution(-1)
	assert.Equal(t, DefaultResolution, bc.Resolution())

	bc.SetBarHeight(10)
	assert.Equal(t, 10, bc.BarHeight())
	bc.SetBarHeight(0)
	assert.Equal(t, DefaultResolution/2, bc.BarHeight())

	bc.SetLabel("")
	assert.Equal(t, "", bc.Label())
	bc.SetLabel("custom")
	assert.Equal(t, "custom", bc.Label())
}

func TestWidthInBars(t *testing.T) {
	bc := newFake(t)
	assert.Equal(t, 2+4+3+2+2, bc.WidthInBars())

	bc.SetDrawingQuietSection(false)
	assert.Equal(t, 4+3+2, bc.WidthInBars())
	assert.Len(t, bc.Modules(), 3)
}

func TestSize(t *testing.T) {
	bc := newFake(t)
	bc.SetBarHeight(20)

	w, h := bc.Size()
	assert.Equal(t, 13*DefaultBarWidth, w)
	assert.Equal(t, 20+output.DefaultTextHeight, h)

	bc.SetDrawingText(false)
	w, h = bc.Size()
	assert.Equal(t, 13*DefaultBarWidth, w)
	assert.Equal(t, 20, h)

	// an empty label adds no text line
	bc.SetDrawingText(true)
	bc.SetLabel("")
	_, h = bc.Size()
	assert.Equal(t, 20, h)
}

func TestBitmap(t *testing.T) {
	bc := newFake(t)
	bc.SetBarWidth(1)
	bc.SetBarHeight(4)

	bits := bc.Bitmap()
	require.Equal(t, 13, bits.Width())
	require.Equal(t, 4, bits.Height())

	// quiet zone, A = 1 1 2, B = 2 1, checksum = 1 1, quiet zone
	want := "  X XXXX X   "
	for x := 0; x < 13; x++ {
		for y := 0; y < 4; y++ {
			assert.Equal(t, want[x] == 'X', bits.Get(x, y), "x=%d y=%d", x, y)
		}
	}
}

type failingOutput struct {
	output.Sizer
	beginErr, endErr error
}

func (f *failingOutput) BeginDraw() error { return f.beginErr }

func (f *failingOutput) EndDraw(int, int) error { return f.endErr }

func TestDrawErrors(t *testing.T) {
	bc := newFake(t)
	boom := errors.New("boom")

	_, _, err := bc.Draw(&failingOutput{beginErr: boom}, 0, 0)
	assert.Same(t, boom, err)

	_, _, err = bc.Draw(&failingOutput{endErr: boom}, 0, 0)
	assert.Same(t, boom, err)
}

func TestImage(t *testing.T) {
	bc := newFake(t)
	bc.SetDrawingText(false)
	bc.SetBarHeight(5)

	img := bc.Image(nil, nil).RGBA()
	assert.Equal(t, 26, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}
