package model

// FontFamilies holds CSS font-family stacks.
type FontFamilies struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// Named returns the families in canonical order.
func (f FontFamilies) Named() []Step {
	return []Step{
		{Name: "heading", Value: f.Heading},
		{Name: "body", Value: f.Body},
		{Name: "mono", Value: f.Mono},
	}
}

// FontSize is one step of the modular type scale.
type FontSize struct {
	Size          string  `json:"size"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing string  `json:"letterSpacing,omitempty"`
}

// NamedFontSize pairs a step name with its size.
type NamedFontSize struct {
	Name string
	FontSize
}

// FontSizes lists the eight named steps, smallest first.
type FontSizes struct {
	XS   FontSize `json:"xs"`
	SM   FontSize `json:"sm"`
	Base FontSize `json:"base"`
	LG   FontSize `json:"lg"`
	XL   FontSize `json:"xl"`
	XL2  FontSize `json:"2xl"`
	XL3  FontSize `json:"3xl"`
	XL4  FontSize `json:"4xl"`
}

// Steps returns the sizes in ascending order with their names.
func (f FontSizes) Steps() []NamedFontSize {
	return []NamedFontSize{
		{Name: "xs", FontSize: f.XS},
		{Name: "sm", FontSize: f.SM},
		{Name: "base", FontSize: f.Base},
		{Name: "lg", FontSize: f.LG},
		{Name: "xl", FontSize: f.XL},
		{Name: "2xl", FontSize: f.XL2},
		{Name: "3xl", FontSize: f.XL3},
		{Name: "4xl", FontSize: f.XL4},
	}
}

// Get looks a size up by step name.
func (f FontSizes) Get(name string) (FontSize, bool) {
	for _, step := range f.Steps() {
		if step.Name == name {
			return step.FontSize, true
		}
	}
	return FontSize{}, false
}

// FontWeights is the fixed weight table.
type FontWeights struct {
	Light     int `json:"light"`
	Regular   int `json:"regular"`
	Medium    int `json:"medium"`
	Semibold  int `json:"semibold"`
	Bold      int `json:"bold"`
	Extrabold int `json:"extrabold"`
}

// NamedWeight pairs a weight name with its numeric value.
type NamedWeight struct {
	Name   string
	Weight int
}

// Steps returns the weights from lightest to heaviest.
func (w FontWeights) Steps() []NamedWeight {
	return []NamedWeight{
		{Name: "light", Weight: w.Light},
		{Name: "regular", Weight: w.Regular},
		{Name: "medium", Weight: w.Medium},
		{Name: "semibold", Weight: w.Semibold},
		{Name: "bold", Weight: w.Bold},
		{Name: "extrabold", Weight: w.Extrabold},
	}
}

// TypographyScale is the resolved font pairing plus size and weight ladders.
type TypographyScale struct {
	FontFamilies FontFamilies `json:"fontFamilies"`
	FontSizes    FontSizes    `json:"fontSizes"`
	FontWeights  FontWeights  `json:"fontWeights"`
	Ratio        float64      `json:"ratio"`
}
