package render

import (
	"regexp"
	"strings"
)

var (
	copyrightPattern   = regexp.MustCompile(`(?i)Copyright \(c\) ([^\n]+)`)
	licenseNamePattern = regexp.MustCompile(`(?mi)^(MIT License|Apache License|GPL|BSD|ISC License|Mozilla Public License).*$`)
)

// licenseLabels maps content markers to a display label, checked in order.
var licenseLabels = []struct {
	marker string
	label  string
}{
	{"MIT LICENSE", "MIT License"},
	{"APACHE LICENSE", "Apache License 2.0"},
	{"GNU GENERAL PUBLIC LICENSE", "GPL License"},
	{"BSD LICENSE", "BSD License"},
	{"ISC LICENSE", "ISC License"},
	{"MOZILLA PUBLIC LICENSE", "Mozilla Public License"},
}

// RenderLicense renders license text with two extra passes ahead of the
// generic pipeline: copyright notices get boxed and a recognized license name
// at the start of a line gets highlighted. The returned label names the
// license when one is recognized, otherwise just "License".
func RenderLicense(text string, ctx Context) (Result, string) {
	highlighted := copyrightPattern.ReplaceAllString(text,
		`<div class="bg-muted p-2 rounded border-l-4 border-primary my-2"><strong>Copyright © $1</strong></div>`)
	highlighted = licenseNamePattern.ReplaceAllString(highlighted,
		`<div class="text-lg font-bold text-primary mb-4 p-3 bg-primary/10 rounded border">$1</div>`)

	return Render(highlighted, ctx), DetectLicense(text)
}

// DetectLicense labels license text by its content.
func DetectLicense(text string) string {
	upper := strings.ToUpper(text)
	for _, l := range licenseLabels {
		if strings.Contains(upper, l.marker) {
			return l.label
		}
	}
	return "License"
}
