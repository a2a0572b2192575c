package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/instancecache"
)

func init() {
	rootCmd.AddCommand(newProcessCmd())
}

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process <scene.json>",
		Short: "Register every instanceable prim in a scene description and reconcile masters",
		Long: `The process command loads a scene description file, registers every
instanceable prim it contains, and runs one ProcessChanges pass, printing
the resulting new, changed, and dead masters.

Example:
  instancecachectl process scene.json
  instancecachectl process --json scene.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args[0])
		},
	}
}

func runProcess(scenePath string) error {
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
	n := registerScene(c, prims)
	printVerbose("registered %d instanceable prim(s)\n", n)

	var changes instancecache.Changes
	c.ProcessChanges(&changes)

	if jsonOut {
		return printJSON(changes)
	}

	for i, m := range changes.NewMasterPrims {
		fmt.Printf("new     %s <- %s\n", m, changes.NewMasterPrimIndexes[i])
	}
	for i, m := range changes.ChangedMasterPrims {
		fmt.Printf("changed %s <- %s\n", m, changes.ChangedMasterPrimIndexes[i])
	}
	for _, m := range changes.DeadMasterPrims {
		fmt.Printf("dead    %s\n", m)
	}
	if changes.IsEmpty() {
		fmt.Println("no changes")
	}
	return nil
}
