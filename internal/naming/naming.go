package naming

import (
	"path/filepath"
	"strings"

	"github.com/ivanmugu/fastasplit/internal/header"
)

// SanitizeFolder enforces a trailing separator on a containing-folder name:
// a trailing "-" becomes "_"; otherwise "_" is appended unless already
// present. Computed once per input file and reused for every record.
func SanitizeFolder(name string) string {
	switch {
	case strings.HasSuffix(name, "-"):
		return strings.TrimSuffix(name, "-") + "_"
	case strings.HasSuffix(name, "_"):
		return name
	default:
		return name + "_"
	}
}

// BuildName computes the output base name and the header line to write for
// one record.
//
// Unicycler: base = sanitizedFolder + length + "_" + topology, and the
// header is synthesized from the base name (the source header is discarded).
// GenBank: base = accession, and the source header is copied verbatim;
// sanitizedFolder is not consulted.
func BuildName(style header.HeaderStyle, sanitizedFolder string, info header.Info) (base, headerLine string) {
	if style == header.StyleGenBank {
		return info.Accession, info.Raw + "\n"
	}
	base = sanitizedFolder + info.Length + "_" + info.Topology
	return base, ">" + base + "\n"
}

// OutputPath joins the output directory with the record's file name.
func OutputPath(dir, base string) string {
	return filepath.Join(dir, base+".fasta")
}
