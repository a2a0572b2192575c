package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/instancecache"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func init() {
	rootCmd.AddCommand(newUnregisterCmd())
}

func newUnregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <scene.json> <prefix>",
		Short: "Unregister every instanceable prim under prefix and report the resulting master changes",
		Long: `unregister replays a scene description, processes it once to establish
a baseline set of masters, then unregisters every instance prim index
under prefix and runs ProcessChanges again, printing the changed and dead
masters the removal produced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnregister(args[0], args[1])
		},
	}
}

func runUnregister(scenePath, prefix string) error {
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
	var baseline instancecache.Changes
	c.ProcessChanges(&baseline)
	printVerbose("baseline: %d master(s)\n", c.GetNumMasters())

	c.UnregisterInstancePrimIndexesUnder(sdfpath.New(prefix))

	var changes instancecache.Changes
	c.ProcessChanges(&changes)

	if jsonOut {
		return printJSON(changes)
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
