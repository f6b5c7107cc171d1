package app

import (
	"io"
	"strings"

	"github.com/gookit/color"
	"go.trai.ch/assetpipe/internal/core/domain"
)

var bannerRule = " " + strings.Repeat("-", 37) + "\n"

// bannerText returns the status banner for mode with color tags.
func bannerText(mode domain.Mode) string {
	lines := []string{"Least Efficient", "Uncompressed files", "Longer load times"}
	tag := "yellow"
	if mode == domain.ModeDistribution {
		lines = []string{"Most Efficient", "Compressed files", "Shorter load times"}
		tag = "green"
	}

	var b strings.Builder
	b.WriteString(bannerRule)
	b.WriteString(" Build Type: <" + tag + ">" + mode.Label() + "</>\n")
	b.WriteString(bannerRule)
	for _, line := range lines {
		b.WriteString(" <" + tag + ">* " + line + "</>\n")
	}
	b.WriteString(bannerRule)
	return b.String()
}

// printBanner writes the status banner, colored when w supports it.
func printBanner(w io.Writer, mode domain.Mode) {
	color.Fprint(w, bannerText(mode))
}
