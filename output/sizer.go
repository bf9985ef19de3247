package output

// Sizer is an Output that paints nothing and records the extent touched by
// drawing calls. It is used to compute the size of a barcode before
// allocating a real surface.
type Sizer struct {
	// TextHeight is the height reported for every label. Zero means
	// DefaultTextHeight.
	TextHeight int

	width, height int
}

// NewSizer returns a Sizer using DefaultTextHeight.
func NewSizer() *Sizer {
	return &Sizer{}
}

// BeginDraw resets the recorded extent.
func (s *Sizer) BeginDraw() error {
	s.width, s.height = 0, 0
	return nil
}

// EndDraw widens the recorded extent to width x height.
func (s *Sizer) EndDraw(width, height int) error {
	s.extend(width, height)
	return nil
}

func (s *Sizer) DrawBar(x, y, width, height int, _ bool) int {
	s.extend(x+width, y+height)
	return width
}

func (s *Sizer) PaintBackground(x, y, width, height int) {
	s.extend(x+width, y+height)
}

func (s *Sizer) DrawText(_ string, layout TextLayout) int {
	h := s.TextHeight
	if h == 0 {
		h = DefaultTextHeight
	}
	s.extend(layout.X+layout.Width, layout.Y+h)
	return h
}

func (s *Sizer) ToggleDrawingColor() {}

// Size returns the recorded extent.
func (s *Sizer) Size() (width, height int) {
	return s.width, s.height
}

func (s *Sizer) extend(x, y int) {
	if x > s.width {
		s.width = x
	}
	if y > s.height {
		s.height = y
	}
}
