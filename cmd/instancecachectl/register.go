package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/instancecache"
	"github.com/chelleccarlyle/usdinstance/instancekey"
	"github.com/chelleccarlyle/usdinstance/sdfpath"
)

func init() {
	rootCmd.AddCommand(newRegisterCmd())
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <scene.json> <path> <key>",
		Short: "Register one additional instanceable prim index and report whether it needs a new master",
		Long: `register replays a scene description, then registers one more
instanceable prim index on top of it and reports RegisterInstancePrimIndex's
return value directly, before running ProcessChanges.

This is mainly useful for exercising the staged-registration contract:
the boolean it prints is the value the composition engine would use to
decide whether the prim it just registered must itself be composed as a
master's source.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(args[0], args[1], args[2])
		},
	}
}

func runRegister(scenePath, path, key string) error {
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

	needsSource := c.RegisterInstancePrimIndex(primIndex{
		path:         sdfpath.New(path),
		instanceable: true,
		key:          instancekey.New(key),
	})

	if jsonOut {
		return printJSON(map[string]any{"needsNewMaster": needsSource})
	}
	fmt.Println(needsSource)
	return nil
}
