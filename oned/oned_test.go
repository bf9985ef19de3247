package oned

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
	"github.com/ericlevine/barcodego/module"
)

func symbols(mods []module.Module) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.Symbol()
	}
	return out
}

func totalWidth(enc barcodego.Encoder) int {
	w := 0
	for _, m := range barcodego.Modules(enc) {
		w += m.WidthInBars()
	}
	return w
}

func requireEncodingError(t *testing.T, err error) *barcodego.EncodingError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, barcodego.ErrEncoding), "want ErrEncoding, got %v", err)
	var encErr *barcodego.EncodingError
	require.True(t, errors.As(err, &encErr))
	return encErr
}

// --- Code 128 ---

func TestCode128OptimalSwitchesToC(t *testing.T) {
	c, err := NewCode128("BBQ1234", nil)
	require.NoError(t, err)
	assert.Equal(t, "B", c.CodeSet())
	want := []string{"B", "B", "Q", SymChangeToC, "12", "34"}
	assert.Equal(t, want, symbols(c.EncodeData()))
	assert.Equal(t, want, symbols(c.EncodeData()), "re-encoding must be idempotent")
	assert.Equal(t, "86", c.Checksum().Symbol())
	assert.Equal(t, 121, totalWidth(c))
}

func TestCode128Idempotent(t *testing.T) {
	c, err := NewCode128("ab\t\t1234567x", nil)
	require.NoError(t, err)
	first := c.EncodeData()
	second := c.EncodeData()
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, module.Equal(first[i], second[i]), "module %d differs", i)
	}
	assert.Equal(t, c.Checksum().Symbol(), c.Checksum().Symbol())
}

func TestCode128InitialSet(t *testing.T) {
	tests := []struct {
		data string
		set  string
	}{
		{"123456", "C"},
		{"1234AB", "C"},
		{"123", "B"},
		{"\tABC", "A"},
		{"Hello", "B"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.data), func(t *testing.T) {
			c, err := NewCode128(tc.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.set, c.CodeSet())
		})
	}
}

func TestCode128ShiftAndLatch(t *testing.T) {
	tests := []struct {
		data string
		want []string
	}{
		{"A\tB", []string{"A", SymShift, "\t", "B"}},
		{"a\t\tb", []string{"a", SymChangeToA, "\t", "\t", SymShift, "b"}},
		{"12345", []string{"12", "34", SymChangeToB, "5"}},
		{"AB12", []string{"A", "B", "1", "2"}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.data), func(t *testing.T) {
			c, err := NewCode128(tc.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, symbols(c.EncodeData()))
		})
	}
}

func TestCode128Checksum(t *testing.T) {
	// START_B(104) + H(40)*1 + I(41)*2 = 226; 226 % 103 = 20
	c, err := NewCode128("HI", nil)
	require.NoError(t, err)
	assert.Equal(t, "4", c.Checksum().Symbol())
}

func TestCode128ForcedSets(t *testing.T) {
	c, err := NewCode128("123", &barcodego.EncodeOptions{ForceCodeSet: "C"})
	require.NoError(t, err)
	assert.Equal(t, barcodego.Code128C, c.Symbology())
	assert.Equal(t, []string{"01", "23"}, symbols(c.EncodeData()))

	_, err = NewCode128("12A4", &barcodego.EncodeOptions{ForceCodeSet: "C"})
	requireEncodingError(t, err)

	_, err = NewCode128("abc", &barcodego.EncodeOptions{ForceCodeSet: "A"})
	encErr := requireEncodingError(t, err)
	assert.Equal(t, 0, encErr.Pos)

	c, err = NewCode128("1234", &barcodego.EncodeOptions{ForceCodeSet: "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, symbols(c.EncodeData()))

	_, err = NewCode128("x", &barcodego.EncodeOptions{ForceCodeSet: "D"})
	requireEncodingError(t, err)
}

func TestCode128Registered(t *testing.T) {
	mods, err := barcodego.Encode(barcodego.Code128A, "ABC", nil)
	require.NoError(t, err)
	assert.Equal(t, SymStartA, mods[0].(*module.Composite).Children()[1].Symbol())

	_, err = barcodego.NewEncoder(barcodego.Code128, "é€", nil)
	requireEncodingError(t, err)
}

func TestCode128FunctionEscapes(t *testing.T) {
	c, err := NewCode128(string(EscapeFNC1)+"1234", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{SymFNC1, "12", "34"}, symbols(c.EncodeData()))
	assert.Equal(t, "1234", c.Label())
}

// --- UCC/EAN-128 ---

func TestSSCC18(t *testing.T) {
	c, err := NewSSCC18("00123456789012345", nil)
	require.NoError(t, err)
	assert.Equal(t, "(00) 001234567890123452", c.Label())
	assert.Equal(t, "C", c.CodeSet())
	mods := c.EncodeData()
	require.Len(t, mods, 11)
	assert.Equal(t, SymFNC1, mods[0].Symbol())
	assert.Equal(t, "00", mods[1].Symbol())

	_, err = NewSSCC18("001234567890123452", nil)
	require.NoError(t, err)
	_, err = NewSSCC18("001234567890123459", nil)
	requireEncodingError(t, err)
	_, err = NewSSCC18("123", nil)
	requireEncodingError(t, err)
}

func TestGTINPadding(t *testing.T) {
	c, err := NewGTIN("950110153000", nil)
	require.NoError(t, err)
	assert.Equal(t, "(01) 09501101530003", c.Label())
}

func TestUCCEAN128Checksum(t *testing.T) {
	c, err := NewUCCEAN128("12345", &barcodego.EncodeOptions{ApplicationIdentifier: "10", Checksum: true})
	require.NoError(t, err)
	assert.Equal(t, "(10) 123457", c.Label())

	c, err = NewUCCEAN128("ABC", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", c.Label())
	assert.Equal(t, string(EscapeFNC1)+"ABC", c.Data())

	_, err = NewUCCEAN128("123", &barcodego.EncodeOptions{ApplicationIdentifier: "00"})
	requireEncodingError(t, err)
}

func TestEAN128Groups(t *testing.T) {
	data := "(01)09501101530003(10)AB123(17)140704"
	c, err := NewEAN128(data, nil)
	require.NoError(t, err)
	assert.Equal(t, "(01) 09501101530003 (10) AB123 (17) 140704", c.Label())
	fnc1 := string(EscapeFNC1)
	assert.Equal(t, fnc1+"0109501101530003"+"10AB123"+fnc1+"17140704", c.Data())

	tests := []string{
		"(01)09501101530004",
		"01)09501101530003",
		"(01",
		"(01)",
		"(5)12",
		"(77)12",
		"(17)1407",
		"(01)0950110153000X",
	}
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			_, err := NewEAN128(tc, nil)
			requireEncodingError(t, err)
		})
	}
}

func TestFixedLengthAI(t *testing.T) {
	n, ok := fixedAILength("01")
	assert.True(t, ok)
	assert.Equal(t, 16, n)
	n, ok = fixedAILength("3103")
	assert.True(t, ok)
	assert.Equal(t, 10, n)
	_, ok = fixedAILength("10")
	assert.False(t, ok)
	_, ok = fixedAILength("400")
	assert.False(t, ok)
}

func TestFixedLengthAITableAgrees(t *testing.T) {
	for ai, def := range applicationIdentifiers {
		n, ok := fixedAILength(ai)
		if !ok {
			continue
		}
		assert.Equal(t, def.min, def.max, "AI %s", ai)
		assert.Equal(t, n, len(ai)+def.min, "AI %s", ai)
	}
	def, ok := lookupAI("3103")
	require.True(t, ok)
	assert.Equal(t, 10, 4+def.min)
}

func TestUCCLabelsMatch(t *testing.T) {
	a, err := NewUCCEAN128("09501101530003", &barcodego.EncodeOptions{ApplicationIdentifier: "01"})
	require.NoError(t, err)
	b, err := NewEAN128("(01)09501101530003", nil)
	require.NoError(t, err)
	assert.Equal(t, a.Label(), b.Label())
	assert.Equal(t, a.Data(), b.Data())
}

// --- Code 39 / Code 93 ---

func TestCode39Mod43(t *testing.T) {
	idx, err := checksum.Mod43CheckIndex("I050000001")
	require.NoError(t, err)
	assert.Equal(t, 24, idx)
	assert.Equal(t, "O", code39Table.At(idx).Symbol())

	c, err := NewCode39("I050000001", &barcodego.EncodeOptions{Checksum: true})
	require.NoError(t, err)
	assert.Equal(t, "O", c.Checksum().Symbol())
}

func TestCode39(t *testing.T) {
	c, err := NewCode39("ABC", nil)
	require.NoError(t, err)
	assert.Nil(t, c.Checksum())
	assert.Equal(t, []string{"A", "B", "C"}, symbols(c.EncodeData()))
	assert.Equal(t, 84, totalWidth(c))

	_, err = NewCode39("abc", nil)
	encErr := requireEncodingError(t, err)
	assert.Equal(t, 0, encErr.Pos)

	_, err = NewCode39(strings.Repeat("A", 81), nil)
	requireEncodingError(t, err)
}

func TestCode39Extended(t *testing.T) {
	c, err := NewCode39Extended("a$\x00~", nil)
	require.NoError(t, err)
	assert.Equal(t, barcodego.Code39Extended, c.Symbology())
	assert.Equal(t, "+A$%U%S", c.Encoded())
	assert.Equal(t, []string{"+A", "$", "%U", "%S"}, symbols(c.EncodeData()))
	assert.Equal(t, "a$\x00~", c.Data())

	_, err = NewCode39Extended("é", nil)
	requireEncodingError(t, err)
}

func TestCode39Escape(t *testing.T) {
	tests := map[byte]string{
		1: "$A", 26: "$Z", 27: "%A", 31: "%E", '!': "/A", ',': "/L", ':': "/Z",
		';': "%F", '?': "%J", '@': "%V", '[': "%K", '_': "%O", '`': "%W",
		'a': "+A", 'z': "+Z", '{': "%P", 127: "%T",
	}
	for c, want := range tests {
		assert.Equal(t, want, code39Escape(c), "escape of %q", c)
	}
}

func TestCode93(t *testing.T) {
	c, err := NewCode93("TEST93", nil)
	require.NoError(t, err)
	assert.Equal(t, "+6", c.Checksum().Symbol())
	assert.Equal(t, (6+4)*9+1+2*QuietZone, totalWidth(c))

	c, err = NewCode93("a\x00", nil)
	require.NoError(t, err)
	assert.Equal(t, "dAbU", c.Encoded())

	_, err = NewCode93("ü", nil)
	requireEncodingError(t, err)
}

func TestCode93Module(t *testing.T) {
	// 0x114 = 100010100
	assert.Equal(t, []int{1, 3, 1, 1, 1, 2}, code93Module("0", 0x114).Widths())
	for i := 0; i < code93Table.Len(); i++ {
		assert.Equal(t, 9, code93Table.At(i).WidthInBars())
	}
}

// --- Codabar ---

func TestCodabar(t *testing.T) {
	c, err := NewCodabar("1234", nil)
	require.NoError(t, err)
	assert.Equal(t, "A1234C", c.Data())
	assert.Equal(t, "A1234C", c.Label())
	assert.Nil(t, c.Checksum())
	assert.Equal(t, []string{"1", "2", "3", "4"}, symbols(c.EncodeData()))
	assert.Equal(t, 81, totalWidth(c))
}

func TestCodabarAliases(t *testing.T) {
	tests := map[string]string{
		"a123t":  "A123A",
		"n-$:/n": "B-$:/B",
		"*1.2+e": "C1.2+D",
		"D9d":    "D9D",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			c, err := NewCodabar(in, nil)
			require.NoError(t, err)
			assert.Equal(t, want, c.Data())
		})
	}
}

func TestCodabarErrors(t *testing.T) {
	tests := []string{"A12345BB", "A123A45", "A1234", "1234B", "12X4", "A"}
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			_, err := NewCodabar(tc, nil)
			requireEncodingError(t, err)
		})
	}
}

// --- UPC / EAN ---

func TestUPCEAN(t *testing.T) {
	tests := []struct {
		name  string
		new   func(string, *barcodego.EncodeOptions) (*UPCEAN, error)
		data  string
		check int
		width int
	}{
		{"UPC-A", NewUPCA, "03600029145", 2, 95},
		{"EAN-13", NewEAN13, "400638133393", 1, 95},
		{"EAN-8", NewEAN8, "9638507", 4, 67},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := tc.new(tc.data, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.check, u.CheckDigit())
			assert.Equal(t, tc.data, u.Data())
			assert.Equal(t, tc.data+fmt.Sprint(tc.check), u.Label())
			assert.Equal(t, tc.width+2*QuietZone, totalWidth(u))

			full := u.Label()
			u2, err := tc.new(full, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.data, u2.Data())

			bad := full[:len(full)-1] + fmt.Sprint((tc.check+1)%10)
			_, err = tc.new(bad, nil)
			requireEncodingError(t, err)

			_, err = tc.new(tc.data[1:], nil)
			requireEncodingError(t, err)
		})
	}
}

func TestUPCACheckDigitSumsToZero(t *testing.T) {
	for _, data := range []string{"03600029145", "01234567890", "99999999999", "00000000000"} {
		u, err := NewUPCA(data, nil)
		require.NoError(t, err)
		full := u.Label()
		sum := 0
		for i := 0; i < len(full); i++ {
			d := int(full[i] - '0')
			if i%2 == 0 {
				d *= 3
			}
			sum += d
		}
		assert.Zero(t, sum%10, full)
	}
}

func TestEAN13Parity(t *testing.T) {
	u, err := NewEAN13("400638133393", nil)
	require.NoError(t, err)
	mods := u.EncodeData()
	require.Len(t, mods, 12)
	// number system 4 selects L G L L G G
	assert.Equal(t, []int{0, 3, 2, 1, 1}, mods[0].Widths())
	assert.Equal(t, []int{0, 1, 1, 2, 3}, mods[1].Widths())
	assert.True(t, module.Equal(mods[6], upceanCenterGuard))
	assert.Equal(t, []int{1, 4, 1, 1}, mods[7].Widths())
}

func TestUPCAGuardsAreTall(t *testing.T) {
	u, err := NewUPCA("03600029145", nil)
	require.NoError(t, err)
	assert.Equal(t, 20+guardExtra*2, u.PreAmble().Height(2, 20))
	assert.Equal(t, 20, u.Checksum().Height(2, 20))
}

// --- 2 of 5 ---

func TestInt2of5(t *testing.T) {
	i, err := NewInt2of5("1234", nil)
	require.NoError(t, err)
	mods := i.EncodeData()
	assert.Equal(t, []string{"12", "34"}, symbols(mods))
	assert.Equal(t, []int{3, 1, 1, 3, 1, 1, 1, 1, 3, 3}, mods[0].Widths())
	assert.Nil(t, i.Checksum())
	assert.Equal(t, 65, totalWidth(i))

	_, err = NewInt2of5("12345", nil)
	requireEncodingError(t, err)
}

func TestInt2of5Checksum(t *testing.T) {
	opts := &barcodego.EncodeOptions{Checksum: true}

	i, err := NewInt2of5("1234567", opts)
	require.NoError(t, err)
	assert.Equal(t, "12345670", i.Label())
	assert.Equal(t, "1234567", i.Data())
	assert.Equal(t, []string{"12", "34", "56"}, symbols(i.EncodeData()))
	require.NotNil(t, i.Checksum())
	assert.Equal(t, "70", i.Checksum().Symbol())
	plain, err := NewInt2of5("12345670", nil)
	require.NoError(t, err)
	assert.Equal(t, totalWidth(plain), totalWidth(i))

	i, err = NewInt2of5("123456", opts)
	require.NoError(t, err)
	assert.Equal(t, "01234565", i.Label())
	assert.Equal(t, "0123456", i.Data())
	assert.Len(t, i.EncodeData(), 3)
	assert.Equal(t, "65", i.Checksum().Symbol())
}

func TestStd2of5(t *testing.T) {
	s, err := NewStd2of5("12", nil)
	require.NoError(t, err)
	assert.Nil(t, s.Checksum())
	assert.Equal(t, 67, totalWidth(s))

	s, err = NewStd2of5("1234567", &barcodego.EncodeOptions{Checksum: true})
	require.NoError(t, err)
	assert.Equal(t, "0", s.Checksum().Symbol())
	assert.Equal(t, "12345670", s.Label())

	_, err = NewStd2of5("12a", nil)
	encErr := requireEncodingError(t, err)
	assert.Equal(t, 2, encErr.Pos)
}

// --- POSTNET ---

func TestPostnet(t *testing.T) {
	p, err := NewPostnet("12345", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, p.CheckDigit())
	assert.Equal(t, "5", p.Checksum().Symbol())
	assert.Equal(t, 84, totalWidth(p))
	heights := p.EncodeData()[0].(*module.Postnet).Heights()
	assert.Equal(t, []int{1, 1, 1, 2, 2}, heights)

	p, err = NewPostnet("12345-6789", nil)
	require.NoError(t, err)
	assert.Equal(t, "123456789", p.Data())

	for _, bad := range []string{"1234", "123456", "12a45"} {
		_, err := NewPostnet(bad, nil)
		requireEncodingError(t, err)
	}
}

// --- registry ---

func TestAllLinearSymbologiesRegistered(t *testing.T) {
	for _, s := range barcodego.Symbologies() {
		if s.Is2D() {
			continue
		}
		assert.True(t, barcodego.Registered(s), s.String())
	}
}

func TestFactoryReturnsNilEncoderOnError(t *testing.T) {
	enc, err := barcodego.NewEncoder(barcodego.UPCA, "12", nil)
	requireEncodingError(t, err)
	assert.Nil(t, enc)
}
