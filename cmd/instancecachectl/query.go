package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/instancecache"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <scene.json> <kind> <path>",
		Short: "Load, process, and query a scene's instancing state",
		Long: `The query command loads a scene description, registers and processes
every instanceable prim in it, then runs one of the cache's read-only
path-navigation queries against <path>. Supported kinds:

  master-for       GetMasterForPrimIndexAtPath
  master-using     GetMasterUsingPrimIndexAtPath
  in-master        IsPrimInMasterForPrimIndexAtPath
  resolve          GetPrimInMasterForPrimIndexAtPath
  used-by          IsPrimInMasterUsingPrimIndexAtPath
  used-paths       GetPrimsInMastersUsingPrimIndexAtPath
  is-master-path   IsPathMasterOrInMaster (no process step needed)`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0], args[1], args[2])
		},
	}
	return cmd
}

func runQuery(scenePath, kind, queryPath string) error {
	path := sdfpath.New(queryPath)

	if kind == "is-master-path" {
		return printQueryResult(instancecache.IsPathMasterOrInMaster(path))
	}

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

	switch kind {
	case "master-for":
		return printQueryResult(c.GetMasterForPrimIndexAtPath(path))
	case "master-using":
		return printQueryResult(c.GetMasterUsingPrimIndexAtPath(path))
	case "in-master":
		return printQueryResult(c.IsPrimInMasterForPrimIndexAtPath(path))
	case "resolve":
		return printQueryResult(c.GetPrimInMasterForPrimIndexAtPath(path))
	case "used-by":
		return printQueryResult(c.IsPrimInMasterUsingPrimIndexAtPath(path))
	case "used-paths":
		return printQueryResult(c.GetPrimsInMastersUsingPrimIndexAtPath(path))
	default:
		return fmt.Errorf("unknown query kind %q", kind)
	}
}

func printQueryResult(v any) error {
	if jsonOut {
		return printJSON(v)
	}
	fmt.Println(v)
	return nil
}
