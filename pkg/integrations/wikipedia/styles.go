package wikipedia

import (
	"strings"

	"github.com/matzehuels/wikireader/pkg/config"
)

var styleModules = []string{
	"mediawiki.skinning.content.parsoid",
	"mediawiki.skinning.interface",
	"site.styles",
	"ext.cite.styles",
	"ext.cite.parsoid.styles",
}

// StylesURL returns the ResourceLoader URL that serves only the stylesheets
// needed to render Parsoid markup in the given skin. The compact skin adds
// Minerva's own styles.
func StylesURL(lang string, skin config.Skin) string {
	modules := append([]string(nil), styleModules...)
	name := "vector-2022"
	if skin.Compact() {
		modules = append(modules, "skins.minerva.styles")
		name = "minerva"
	}
	return "https://" + lang + ".wikipedia.org/w/load.php?modules=" + strings.Join(modules, "|") + "&only=styles&skin=" + name
}
