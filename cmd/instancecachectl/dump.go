package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/instancecache"
	"github.com/chelleccarlyle/usdinstance/internal/dumpdir"
)

var dumpOut string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpOut, "out", "", "Directory to write the snapshot to (default: a per-user scratch directory)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <scene.json>",
		Short: "Process a scene description and write its master snapshot to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(scenePath string) error {
	f, err := os.Open(scenePath)
	if err != nil {
		return fmt.Errorf("open scene description: %w", err)
	}
	defer f.Close()

	prims, err := loadScene(f)
	if err != nil {
		return err
	}

	c := instancecache.NewWithConfigFunc(cacheConfigFunc())
	registerScene(c, prims)
	var changes instancecache.Changes
	c.ProcessChanges(&changes)

	outDir := dumpOut
	if outDir == "" {
		outDir = dumpdir.Default()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create dump directory: %w", err)
	}

	outPath := filepath.Join(outDir, filepath.Base(scenePath)+".snapshot.json")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Snapshot()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	printVerbose("wrote snapshot to %s\n", outPath)
	fmt.Println(outPath)
	return nil
}
