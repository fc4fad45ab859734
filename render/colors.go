package render

// Theme holds the non-sector colors of the UI
type Theme struct {
	Background RGB
	Text       RGB
	Muted      RGB
	Border     RGB
	Hub        RGB
	Pointer    RGB
	StatusBg   RGB
	StatusText RGB
	Highlight  RGB
	WinnerBg   RGB
	WinnerText RGB
}

// LightTheme is the default theme
var LightTheme = Theme{
	Background: RGB{240, 242, 245},
	Text:       RGB{51, 51, 51},
	Muted:      RGB{120, 120, 120},
	Border:     RGBWhite,
	Hub:        RGBWhite,
	Pointer:    RGB{51, 51, 51},
	StatusBg:   RGB{52, 152, 219},
	StatusText: RGBWhite,
	Highlight:  RGB{255, 215, 0},
	WinnerBg:   RGBWhite,
	WinnerText: RGB{51, 51, 51},
}

// DarkTheme is the dark mode variant
var DarkTheme = Theme{
	Background: RGB{26, 27, 38},
	Text:       RGB{224, 224, 224},
	Muted:      RGB{140, 140, 150},
	Border:     RGB{26, 27, 38},
	Hub:        RGB{45, 45, 60},
	Pointer:    RGB{224, 224, 224},
	StatusBg:   RGB{40, 60, 90},
	StatusText: RGB{224, 224, 224},
	Highlight:  RGB{255, 215, 0},
	WinnerBg:   RGB{45, 45, 60},
	WinnerText: RGB{255, 255, 255},
}

// ThemeFor selects the theme for dark mode on or off
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
