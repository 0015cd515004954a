// Package header parses FASTA header lines according to a selected header
// style. Parsing is pure: no I/O, no side effects. The style must be
// validated once at the configuration boundary; passing an unknown style to
// [Parse] is a caller contract violation and yields [ErrInvalidStyle].
package header

import (
	"errors"
	"fmt"
	"strings"
)

// HeaderStyle selects which metadata convention a header line follows.
type HeaderStyle string

const (
	// StyleUnicycler matches assembly headers with space-separated
	// key=value tokens (e.g. ">1 length=4000000 depth=1.00x circular=true").
	StyleUnicycler HeaderStyle = "unicycler"
	// StyleGenBank matches headers whose first whitespace-delimited token
	// is an accession (e.g. ">CP012345.1 Escherichia coli chromosome").
	StyleGenBank HeaderStyle = "genbank"
)

// ErrInvalidStyle reports an unrecognized header style.
var ErrInvalidStyle = errors.New("invalid header style")

// ParseStyle validates a user-supplied style string. Call this once at the
// boundary; [Parse] does not re-validate per line.
func ParseStyle(s string) (HeaderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unicycler":
		return StyleUnicycler, nil
	case "genbank":
		return StyleGenBank, nil
	default:
		return "", fmt.Errorf("%w: %q (use 'unicycler' or 'genbank')", ErrInvalidStyle, s)
	}
}

// Info holds the metadata extracted from one header line. Which fields are
// populated depends on Style: Unicycler fills Length and Topology, GenBank
// fills Accession. Raw always carries the header line as read, without its
// trailing newline.
type Info struct {
	Style HeaderStyle
	Raw   string

	// Unicycler fields. Length stays empty when the header carries no
	// length token (absent metadata is not an error). Topology is the
	// literal key preceding "=" in the circularity token, or "linear"
	// when no such token is present.
	Length   string
	Topology string

	// GenBank field: first whitespace-delimited token with the leading
	// record marker stripped.
	Accession string
}

// Parse extracts naming metadata from a header line. The style is matched
// exhaustively; an unknown style returns [ErrInvalidStyle].
func Parse(line string, style HeaderStyle) (Info, error) {
	switch style {
	case StyleUnicycler:
		return parseUnicycler(line), nil
	case StyleGenBank:
		return parseGenBank(line), nil
	default:
		return Info{}, fmt.Errorf("%w: %q", ErrInvalidStyle, string(style))
	}
}

// parseUnicycler scans space-separated tokens in order. A token containing
// "len" supplies the length (value side of "="); a token containing
// "circular" supplies the topology (key side of "="). First match wins for
// each field; every other token is ignored.
func parseUnicycler(line string) Info {
	info := Info{Style: StyleUnicycler, Raw: strings.TrimRight(line, "\r\n")}

	var lengthFound, circularFound bool
	for _, tok := range strings.Split(info.Raw, " ") {
		switch {
		case !lengthFound && strings.Contains(tok, "len"):
			if _, val, ok := strings.Cut(tok, "="); ok {
				info.Length = val
			}
			lengthFound = true
		case !circularFound && strings.Contains(tok, "circular"):
			key, _, _ := strings.Cut(tok, "=")
			info.Topology = key
			circularFound = true
		}
	}

	if !circularFound {
		info.Topology = "linear"
	}
	return info
}

// parseGenBank takes the first space-delimited token, strips the leading
// record marker, and discards the remainder of the header.
func parseGenBank(line string) Info {
	raw := strings.TrimRight(line, "\r\n")
	first, _, _ := strings.Cut(raw, " ")
	return Info{
		Style:     StyleGenBank,
		Raw:       raw,
		Accession: strings.TrimPrefix(first, ">"),
	}
}
