package header

import (
	"errors"
	"testing"
)

func TestParse_Unicycler(t *testing.T) {
	tests := []struct {
		name string
		line string

		wantLength   string
		wantTopology string
	}{
		{
			name: "typical assembly header",
			line: ">1 length=4000000 depth=1.00x circular=true",
			wantLength: "4000000", wantTopology: "circular",
		},
		{
			name: "no circular token defaults to linear",
			line: ">2 length=20",
			wantLength: "20", wantTopology: "linear",
		},
		{
			name: "no length token leaves length empty",
			line: ">3 depth=0.50x",
			wantLength: "", wantTopology: "linear",
		},
		{
			name: "abbreviated length key",
			line: ">len=100 extra",
			wantLength: "100", wantTopology: "linear",
		},
		{
			name: "first length token wins",
			line: ">1 length=500 length=900",
			wantLength: "500", wantTopology: "linear",
		},
		{
			name: "first circular token wins",
			line: ">1 circular=true is_circular=false",
			wantLength: "", wantTopology: "circular",
		},
		{
			name: "topology is the key before the equals sign",
			line: ">1 length=10 is_circular=yes",
			wantLength: "10", wantTopology: "is_circular",
		},
		{
			name: "circular token without value",
			line: ">1 length=10 circular",
			wantLength: "10", wantTopology: "circular",
		},
		{
			name: "length token without value stays empty",
			line: ">1 length",
			wantLength: "", wantTopology: "linear",
		},
		{
			name: "bare header",
			line: ">contig_1",
			wantLength: "", wantTopology: "linear",
		},
		{
			name: "trailing newline stripped",
			line: ">1 circular=true length=500\n",
			wantLength: "500", wantTopology: "circular",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Parse(tt.line, StyleUnicycler)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if info.Length != tt.wantLength {
				t.Errorf("Length = %q, want %q", info.Length, tt.wantLength)
			}
			if info.Topology != tt.wantTopology {
				t.Errorf("Topology = %q, want %q", info.Topology, tt.wantTopology)
			}
		})
	}
}

func TestParse_GenBank(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"accession with description", ">CP012345.1 Escherichia coli chromosome", "CP012345.1"},
		{"accession only", ">NZ_CP045120.1", "NZ_CP045120.1"},
		{"trailing newline stripped", ">CP000001.2 plasmid\n", "CP000001.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Parse(tt.line, StyleGenBank)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if info.Accession != tt.want {
				t.Errorf("Accession = %q, want %q", info.Accession, tt.want)
			}
		})
	}
}

func TestParse_GenBankKeepsRawHeader(t *testing.T) {
	line := ">CP012345.1 Escherichia coli chromosome"
	info, err := Parse(line, StyleGenBank)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Raw != line {
		t.Errorf("Raw = %q, want %q", info.Raw, line)
	}
}

func TestParse_InvalidStyle(t *testing.T) {
	_, err := Parse(">x", HeaderStyle("ncbi"))
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("err = %v, want ErrInvalidStyle", err)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    HeaderStyle
		wantErr bool
	}{
		{"unicycler", "unicycler", StyleUnicycler, false},
		{"genbank", "genbank", StyleGenBank, false},
		{"case insensitive", "GenBank", StyleGenBank, false},
		{"surrounding space", " unicycler ", StyleUnicycler, false},
		{"empty", "", "", true},
		{"unknown", "prodigal", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
