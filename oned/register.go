package oned

import "github.com/ericlevine/barcodego"

func init() {
	barcodego.RegisterEncoder(barcodego.Code128, factory(NewCode128))
	barcodego.RegisterEncoder(barcodego.Code128A, forcedCode128("A"))
	barcodego.RegisterEncoder(barcodego.Code128B, forcedCode128("B"))
	barcodego.RegisterEncoder(barcodego.Code128C, forcedCode128("C"))
	barcodego.RegisterEncoder(barcodego.UCCEAN128, factory(NewUCCEAN128))
	barcodego.RegisterEncoder(barcodego.EAN128, factory(NewEAN128))
	barcodego.RegisterEncoder(barcodego.SSCC18, factory(NewSSCC18))
	barcodego.RegisterEncoder(barcodego.SCC14, factory(NewSCC14))
	barcodego.RegisterEncoder(barcodego.GTIN, factory(NewGTIN))
	barcodego.RegisterEncoder(barcodego.ShipmentID, factory(NewShipmentID))
	barcodego.RegisterEncoder(barcodego.Code39, factory(NewCode39))
	barcodego.RegisterEncoder(barcodego.Code39Extended, factory(NewCode39Extended))
	barcodego.RegisterEncoder(barcodego.Code93, factory(NewCode93))
	barcodego.RegisterEncoder(barcodego.Codabar, factory(NewCodabar))
	barcodego.RegisterEncoder(barcodego.UPCA, factory(NewUPCA))
	barcodego.RegisterEncoder(barcodego.EAN13, factory(NewEAN13))
	barcodego.RegisterEncoder(barcodego.EAN8, factory(NewEAN8))
	barcodego.RegisterEncoder(barcodego.Std2of5, factory(NewStd2of5))
	barcodego.RegisterEncoder(barcodego.Int2of5, factory(NewInt2of5))
	barcodego.RegisterEncoder(barcodego.Postnet, factory(NewPostnet))
}

// factory adapts a concrete constructor so that a failed construction
// yields a nil Encoder rather than a typed nil.
func factory[E barcodego.Encoder](newEncoder func(string, *barcodego.EncodeOptions) (E, error)) barcodego.Factory {
	return func(data string, opts *barcodego.EncodeOptions) (barcodego.Encoder, error) {
		enc, err := newEncoder(data, opts)
		if err != nil {
			return nil, err
		}
		return enc, nil
	}
}

func forcedCode128(set string) barcodego.Factory {
	return func(data string, opts *barcodego.EncodeOptions) (barcodego.Encoder, error) {
		o := options(opts)
		o.ForceCodeSet = set
		enc, err := NewCode128(data, &o)
		if err != nil {
			return nil, err
		}
		return enc, nil
	}
}
