package pdf417

import "github.com/ericlevine/barcodego"

func init() {
	barcodego.RegisterEncoder(barcodego.PDF417, func(data string, opts *barcodego.EncodeOptions) (barcodego.Encoder, error) {
		enc, err := NewPDF417(data, opts)
		if err != nil {
			return nil, err
		}
		return enc, nil
	})
}
