package theme

// Color is a color encoded as a bare list of comma-separated RGB channel
// values, e.g. "74, 144,226". The encoding is kept exactly as declared.
type Color string

// Theme holds the named colors of a single theme.
type Theme struct {
	PrimaryColor     Color `json:"primaryColor" yaml:"primaryColor"`
	PrimaryTextColor Color `json:"primaryTextColor" yaml:"primaryTextColor"`
}

// RGB is a decoded channel triplet.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}
