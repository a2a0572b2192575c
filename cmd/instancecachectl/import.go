package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func init() {
	rootCmd.AddCommand(newImportCmd())
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <legacy.txt>",
		Short: "Convert a legacy flat-text scene description into scene JSON",
		Long: `Older pipeline tools emit scene descriptions as a flat "path<TAB>key"
text file in the local Windows-1252 encoding rather than UTF-8 JSON. import
decodes it and writes the equivalent scene JSON document to stdout.

Each non-empty line is "<path>\t<key>"; a path with no key field names a
non-instanceable prim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0])
		},
	}
}

func runImport(legacyPath string) error {
	f, err := os.Open(legacyPath)
	if err != nil {
		return fmt.Errorf("open legacy scene description: %w", err)
	}
	defer f.Close()

	// The legacy exporter writes in the pipeline's local encoding, typically
	// Windows-1252 on the Linux render farm hosts that produce these files.
	decoder := charmap.Windows1252.NewDecoder()
	utf8Reader := transform.NewReader(f, decoder)

	var doc sceneDescription
	scanner := bufio.NewScanner(utf8Reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)
		sp := scenePrim{Path: fields[0]}
		if len(fields) == 2 && fields[1] != "" {
			sp.Instanceable = true
			sp.Key = fields[1]
		}
		doc.Prims = append(doc.Prims, sp)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read legacy scene description: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
